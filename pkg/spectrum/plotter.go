package spectrum

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/soxt/soxt/pkg/evaluate"
	"github.com/soxt/soxt/pkg/logger"
)

type Options struct {
	// XShift is applied uniformly to all spectra, e.g. zeroing at the
	// Fermi energy or an absorption edge.
	XShift float64
	// YShift displaces successive spectra by YShift times their insertion
	// index, for easier visual separation.
	YShift float64
	// Stack draws filled regions accumulating on a running baseline
	// instead of plain lines.
	Stack   bool
	Palette Palette
}

type RenderOptions struct {
	Title string
	// XLim/YLim are [min, max] axis limits; nil means automatic.
	XLim *[2]float64
	YLim *[2]float64
	// WidthIn/HeightIn are the canvas size in inches; zero values fall
	// back to 12x8.
	WidthIn  float64
	HeightIn float64
}

type entry struct {
	label string
	spec  Spectrum
	color color.Color
}

// Plotter accumulates labeled spectra and renders them as overlaid lines
// or stacked fills. It is a single-writer object: callers sharing one
// across goroutines must serialize Add/AddMany/Render themselves.
type Plotter struct {
	opts    Options
	cycle   []color.Color
	entries []entry
	index   map[string]int
	log     *logrus.Entry
}

func NewPlotter(opts Options) (*Plotter, error) {
	if opts.Palette == "" {
		opts.Palette = PaletteSet1
	}

	cycle, err := opts.Palette.Colors()
	if err != nil {
		return nil, err
	}

	return &Plotter{
		opts:  opts,
		cycle: cycle,
		index: make(map[string]int),
		log:   logger.GetLogger("plotter"),
	}, nil
}

// Add stores a labeled spectrum. Re-adding an existing label replaces its
// data in place, keeping the original position; the stored color only
// changes when an explicit one is given. A nil color draws the next
// palette color. Validation failures leave the accumulator untouched.
func (p *Plotter) Add(label string, s Spectrum, c color.Color) error {
	if err := validate(label, s); err != nil {
		return err
	}

	if i, ok := p.index[label]; ok {
		p.log.Tracef("Replacing spectrum: %s", label)
		p.entries[i].spec = s
		if c != nil {
			p.entries[i].color = c
		}
		return nil
	}

	if c == nil {
		c = p.cycle[len(p.entries)%len(p.cycle)]
	}

	p.index[label] = len(p.entries)
	p.entries = append(p.entries, entry{
		label: label,
		spec:  s,
		color: c,
	})

	return nil
}

// AddMany inserts a set of spectra in deterministic order: sorted by less
// when given, else lexical label order.
func (p *Plotter) AddMany(spectra map[string]Spectrum, less func(a, b string) bool) error {
	labels := evaluate.SortedKeys(spectra)
	if less != nil {
		sort.Slice(labels, func(i, j int) bool { return less(labels[i], labels[j]) })
	}

	for _, label := range labels {
		if err := p.Add(label, spectra[label], nil); err != nil {
			return err
		}
	}

	return nil
}

func validate(label string, s Spectrum) error {
	if s == nil {
		return fmt.Errorf("spectrum %q: nil spectrum", label)
	}
	if len(s.X()) == 0 {
		return fmt.Errorf("spectrum %q of type %T: X returned no coordinates", label, s)
	}
	if len(s.Y()) == 0 {
		return fmt.Errorf("spectrum %q of type %T: Y returned no coordinates", label, s)
	}
	if len(s.X()) != len(s.Y()) {
		return fmt.Errorf("spectrum %q of type %T: X/Y length mismatch (%d != %d)",
			label, s, len(s.X()), len(s.Y()))
	}
	return nil
}

// Render draws the stored spectra in insertion order and returns the
// chart. Axis labels are taken from the last-drawn spectrum; overlaid
// spectra are assumed homogeneous by convention.
func (p *Plotter) Render(opts RenderOptions) (*plot.Plot, error) {
	ch := plot.New()
	ch.Title.Text = opts.Title
	ch.Legend.Top = true

	var fills []plotter.XYs
	if p.opts.Stack {
		var err error
		fills, err = stackedFills(p.entries, p.opts.XShift, p.opts.YShift)
		if err != nil {
			return nil, err
		}
	}

	for i, e := range p.entries {
		if !p.opts.Stack {
			shift := p.opts.YShift * float64(i)
			line, err := plotter.NewLine(lineXYs(e.spec.X(), e.spec.Y(), p.opts.XShift, shift))
			if err != nil {
				return nil, fmt.Errorf("draw %q: %w", e.label, err)
			}
			line.LineStyle.Width = vg.Points(2)
			line.LineStyle.Color = e.color

			ch.Add(line)
			ch.Legend.Add(e.label, line)
		} else {
			poly, err := plotter.NewPolygon(fills[i])
			if err != nil {
				return nil, fmt.Errorf("draw %q: %w", e.label, err)
			}
			poly.Color = e.color

			ch.Add(poly)
			ch.Legend.Add(e.label, poly)
		}

		ch.X.Label.Text = e.spec.XLabel()
		ch.Y.Label.Text = e.spec.YLabel()
	}

	if opts.XLim != nil {
		ch.X.Min, ch.X.Max = opts.XLim[0], opts.XLim[1]
	}
	if opts.YLim != nil {
		ch.Y.Min, ch.Y.Max = opts.YLim[0], opts.YLim[1]
	}

	p.log.Debugf("Rendered %d spectra (stack: %v)", len(p.entries), p.opts.Stack)
	return ch, nil
}

// Save renders and writes the chart; the image format follows the path
// extension and any backend I/O error propagates unmodified.
func (p *Plotter) Save(path string, opts RenderOptions) error {
	ch, err := p.Render(opts)
	if err != nil {
		return err
	}

	width, height := opts.WidthIn, opts.HeightIn
	if width == 0 {
		width = 12
	}
	if height == 0 {
		height = 8
	}

	return ch.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path)
}

// stackedFills computes one filled region per entry, each drawn between
// the running baseline and the entry's shifted curve. The baseline
// accumulates the raw, unshifted values in insertion order, so stacking
// is cumulative. All stacked spectra must share a grid.
func stackedFills(entries []entry, xshift, yshift float64) ([]plotter.XYs, error) {
	var base []float64
	fills := make([]plotter.XYs, 0, len(entries))

	for i, e := range entries {
		x, y := e.spec.X(), e.spec.Y()
		if base == nil {
			base = make([]float64, len(y))
		}
		if len(y) != len(base) {
			return nil, fmt.Errorf("draw %q: stacked spectra must share a grid (%d != %d points)",
				e.label, len(y), len(base))
		}

		fills = append(fills, fillXYs(x, base, y, xshift, yshift*float64(i)))

		for j := range base {
			base[j] += y[j]
		}
	}

	return fills, nil
}

func lineXYs(x, y []float64, xshift, yshift float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i] = plotter.XY{X: x[i] + xshift, Y: y[i] + yshift}
	}
	return xys
}

// fillXYs traces the filled region between the running baseline and the
// shifted curve: forward along the baseline, then back along the curve.
func fillXYs(x, base, y []float64, xshift, yshift float64) plotter.XYs {
	xys := make(plotter.XYs, 0, 2*len(x))
	for i := range x {
		xys = append(xys, plotter.XY{X: x[i] + xshift, Y: base[i]})
	}
	for i := len(x) - 1; i >= 0; i-- {
		xys = append(xys, plotter.XY{X: x[i] + xshift, Y: y[i] + yshift})
	}
	return xys
}
