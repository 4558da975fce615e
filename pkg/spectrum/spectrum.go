package spectrum

// Spectrum is any labeled curve: equal-length coordinate sequences plus
// axis-label metadata. Density-of-states, XAS and absorption curves all
// satisfy this.
type Spectrum interface {
	X() []float64
	Y() []float64
	XLabel() string
	YLabel() string
}

// Data is the canonical Spectrum implementation.
type Data struct {
	XValues []float64
	YValues []float64
	XAxis   string
	YAxis   string
}

func (d *Data) X() []float64 { return d.XValues }

func (d *Data) Y() []float64 { return d.YValues }

func (d *Data) XLabel() string { return d.XAxis }

func (d *Data) YLabel() string { return d.YAxis }
