package spectrum

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot/palette/brewer"
)

// Palette names a colorbrewer color cycle. The set is closed: selection
// happens against a static table, so an unknown name fails when the
// plotter is constructed instead of at render time.
type Palette string

const (
	PaletteSet1     Palette = "set1"
	PaletteSet2     Palette = "set2"
	PaletteSet3     Palette = "set3"
	PaletteDark2    Palette = "dark2"
	PalettePaired   Palette = "paired"
	PaletteAccent   Palette = "accent"
	PaletteSpectral Palette = "spectral"
)

var brewerPalettes = map[Palette]struct {
	typ  brewer.PaletteType
	name string
	size int
}{
	PaletteSet1:     {brewer.TypeQualitative, "Set1", 9},
	PaletteSet2:     {brewer.TypeQualitative, "Set2", 8},
	PaletteSet3:     {brewer.TypeQualitative, "Set3", 12},
	PaletteDark2:    {brewer.TypeQualitative, "Dark2", 8},
	PalettePaired:   {brewer.TypeQualitative, "Paired", 12},
	PaletteAccent:   {brewer.TypeQualitative, "Accent", 8},
	PaletteSpectral: {brewer.TypeDiverging, "Spectral", 11},
}

// Colors resolves the palette into its color cycle.
func (p Palette) Colors() ([]color.Color, error) {
	sel, ok := brewerPalettes[p]
	if !ok {
		return nil, fmt.Errorf("unknown palette: %q", p)
	}

	pal, err := brewer.GetPalette(sel.typ, sel.name, sel.size)
	if err != nil {
		return nil, fmt.Errorf("load palette %q: %w", p, err)
	}

	return pal.Colors(), nil
}

// Palettes lists the known palette names, sorted, for CLI help and
// validation.
func Palettes() []string {
	names := make([]string, 0, len(brewerPalettes))
	for p := range brewerPalettes {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}
