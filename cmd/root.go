package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soxt/soxt/pkg/config"
	"github.com/soxt/soxt/pkg/logger"
	"github.com/soxt/soxt/pkg/runtime"
	"github.com/soxt/soxt/pkg/stringutils"
)

var (
	// Global flags
	flagConfigFile string
	flagLogFile    string
	flagVerbosity  int

	initialized bool
)

var rootCmd = &cobra.Command{
	Use:   "soxt",
	Short: "A CLI for mining scientific simulation output",
	Long: `A CLI for extracting structured records from scientific simulation
output files with named regular expressions, and for plotting extracted
spectra as overlaid or stacked charts.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfigFile, "config", "c", "config.yaml", "Config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Log file")
	rootCmd.PersistentFlags().CountVarP(&flagVerbosity, "verbose", "v", "Verbose mode (-v or -vv)")
}

func initCore(showAppInfo bool) {
	// init logging
	if err := logger.Init(flagVerbosity, flagLogFile); err != nil {
		fmt.Printf("Failed initializing logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.GetLogger("app")

	// init config
	if err := config.Init(flagConfigFile); err != nil {
		log.WithError(err).Fatal("Failed initializing config")
	}

	if showAppInfo {
		log.Infof("Using %s = %s (%s@%s)", stringutils.LeftJust("VERSION", " ", 10),
			runtime.Version, runtime.GitCommit, runtime.Timestamp)
		logger.ShowUsing()
		config.ShowUsing()
	}
}
