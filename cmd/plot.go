package cmd

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/soxt/soxt/pkg/config"
	"github.com/soxt/soxt/pkg/evaluate"
	"github.com/soxt/soxt/pkg/logger"
	"github.com/soxt/soxt/pkg/spectrum"
)

var (
	flagPlotOutput string
	flagStack      bool
	flagXShift     float64
	flagYShift     float64
	flagPalette    string
	flagXLim       string
	flagYLim       string
	flagTitle      string
	flagXLabel     string
	flagYLabel     string
	flagShow       bool
)

// formats supported by the chart backend, keyed off the output extension
var plotFormats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tex", "tif", "tiff"}

var plotCmd = &cobra.Command{
	Use:   "plot INPUT...",
	Short: "Plot spectra from two-column data files",
	Long: `This command reads two-column numeric data files (x y per line), one
spectrum per file, and renders them as overlaid lines or stacked fills.
Inputs may be given as "label=path" to control legend labels.`,

	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// init core
		if !initialized {
			initCore(true)
			initialized = true
		}

		// set log
		log := logger.GetLogger("plot")

		// plot options: config defaults, overridden by explicit flags
		pcfg := config.Config.Plot
		if cmd.Flags().Changed("stack") {
			pcfg.Stack = flagStack
		}
		if cmd.Flags().Changed("xshift") {
			pcfg.XShift = flagXShift
		}
		if cmd.Flags().Changed("yshift") {
			pcfg.YShift = flagYShift
		}
		if cmd.Flags().Changed("palette") {
			pcfg.Palette = flagPalette
		}

		if pcfg.Palette != "" && !evaluate.StringSliceContains(spectrum.Palettes(), pcfg.Palette, true) {
			log.Fatalf("Unknown palette %q, available: %s", pcfg.Palette,
				strings.Join(spectrum.Palettes(), ", "))
		}

		plotter, err := spectrum.NewPlotter(spectrum.Options{
			XShift:  pcfg.XShift,
			YShift:  pcfg.YShift,
			Stack:   pcfg.Stack,
			Palette: spectrum.Palette(strings.ToLower(pcfg.Palette)),
		})
		if err != nil {
			log.WithError(err).Fatal("Failed creating plotter")
		}

		// load spectra
		for _, arg := range args {
			label, path := splitLabelArg(arg)

			data, err := readSpectrumFile(path, flagXLabel, flagYLabel)
			if err != nil {
				log.WithError(err).Fatalf("Failed reading spectrum: %s", path)
			}

			if err := plotter.Add(label, data, nil); err != nil {
				log.WithError(err).Fatalf("Failed adding spectrum: %s", label)
			}

			log.Debugf("Loaded %s data point(s) from: %s", humanize.Comma(int64(len(data.XValues))), path)
		}

		// render options
		xlim, err := parseRange(flagXLim)
		if err != nil {
			log.WithError(err).Fatal("Failed parsing xlim")
		}
		ylim, err := parseRange(flagYLim)
		if err != nil {
			log.WithError(err).Fatal("Failed parsing ylim")
		}

		renderOpts := spectrum.RenderOptions{
			Title:    flagTitle,
			XLim:     xlim,
			YLim:     ylim,
			WidthIn:  pcfg.WidthIn,
			HeightIn: pcfg.HeightIn,
		}

		// validate output format
		ext := strings.TrimPrefix(filepath.Ext(flagPlotOutput), ".")
		if !evaluate.StringSliceContains(plotFormats, ext, true) {
			log.Fatalf("Unsupported output format %q, available: %s", ext,
				strings.Join(plotFormats, ", "))
		}

		if err := plotter.Save(flagPlotOutput, renderOpts); err != nil {
			log.WithError(err).Fatal("Failed saving chart")
		}

		log.Infof("Wrote %s (%s spectra)", flagPlotOutput, humanize.Comma(int64(len(args))))

		if flagShow {
			if err := plotter.Show(renderOpts); err != nil {
				log.WithError(err).Fatal("Failed opening viewer")
			}
		}
	},
}

func init() {
	plotCmd.Flags().StringVarP(&flagPlotOutput, "out", "o", "spectra.png", "Output image path (format by extension)")
	plotCmd.Flags().BoolVar(&flagStack, "stack", false, "Stack spectra as cumulative fills")
	plotCmd.Flags().Float64Var(&flagXShift, "xshift", 0, "Uniform horizontal shift, e.g. to zero at the Fermi energy")
	plotCmd.Flags().Float64Var(&flagYShift, "yshift", 0, "Vertical displacement applied per successive spectrum")
	plotCmd.Flags().StringVar(&flagPalette, "palette", "", "Color palette")
	plotCmd.Flags().StringVar(&flagXLim, "xlim", "", "X axis limits as min:max")
	plotCmd.Flags().StringVar(&flagYLim, "ylim", "", "Y axis limits as min:max")
	plotCmd.Flags().StringVar(&flagTitle, "title", "", "Chart title")
	plotCmd.Flags().StringVar(&flagXLabel, "xlabel", "", "X axis label")
	plotCmd.Flags().StringVar(&flagYLabel, "ylabel", "", "Y axis label")
	plotCmd.Flags().BoolVar(&flagShow, "show", false, "Open the rendered chart in the system viewer")

	rootCmd.AddCommand(plotCmd)
}
