package cmd

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/soxt/soxt/pkg/config"
	"github.com/soxt/soxt/pkg/convert"
	"github.com/soxt/soxt/pkg/evaluate"
	"github.com/soxt/soxt/pkg/extract"
	"github.com/soxt/soxt/pkg/httputils"
	"github.com/soxt/soxt/pkg/logger"
	"github.com/soxt/soxt/pkg/regex"
)

var (
	flagOutputPath string
	flagMatch      string
	flagIgnores    []string
)

var grepCmd = &cobra.Command{
	Use:   "grep PROFILE INPUT...",
	Short: "Extract structured records from output files",
	Long: `This command runs a configured extraction profile (named patterns plus
table queries) over the given inputs and emits one JSON record per input.
Inputs may be files, directories (scanned recursively) or http(s) URLs.`,

	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		startTime := time.Now()

		// init core
		if !initialized {
			initCore(true)
			initialized = true
		}

		// set log
		log := logger.GetLogger("grep")

		// retrieve profile
		profileName := args[0]
		profile, ok := config.Config.Profiles[profileName]
		if !ok {
			log.Fatalf("No profile configuration found for: %q (available: %s)", profileName,
				strings.Join(evaluate.SortedKeys(config.Config.Profiles), ", "))
		}

		// validate profile patterns before touching any input
		profilePatterns := make([]string, 0, len(profile.Patterns)+3*len(profile.Tables))
		for _, p := range profile.Patterns {
			profilePatterns = append(profilePatterns, p)
		}
		for _, tc := range profile.Tables {
			profilePatterns = append(profilePatterns, tc.Header, tc.Row, tc.Footer)
		}
		if err := regex.ValidatePatterns(profilePatterns); err != nil {
			log.WithError(err).Fatalf("Invalid pattern in profile: %q", profileName)
		}

		// resolve profile postprocess
		conv, err := convert.Resolve(profile.Postprocess)
		if err != nil {
			log.WithError(err).Fatal("Failed resolving profile postprocess")
		}

		// resolve inputs
		inputs, err := resolveInputs(args[1:], flagMatch, flagIgnores)
		if err != nil {
			log.WithError(err).Fatal("Failed resolving inputs")
		}
		if len(inputs) == 0 {
			log.Fatal("No inputs found")
		}

		log.Infof("Extracting with profile %q from %s input(s)", profileName,
			humanize.Comma(int64(len(inputs))))

		fetcher := httputils.NewFetcher(config.Config.Fetch.Timeout, config.Config.Fetch.RequestsPerSecond)

		// iterate inputs
		extracted := 0
		failed := 0
		records := make([]extract.Record, 0, len(inputs))
		for _, input := range inputs {
			text, err := readInput(input, fetcher)
			if err != nil {
				log.WithError(err).Errorf("Failed reading input: %s", input)
				failed++
				continue
			}

			record, err := runProfile(text, profile, conv)
			if err != nil {
				log.WithError(err).Errorf("Failed extracting from: %s", input)
				failed++
				continue
			}

			record.Attach("input", input)
			records = append(records, record)
			extracted++
		}

		if err := writeRecords(records, flagOutputPath); err != nil {
			log.WithError(err).Fatal("Failed writing records")
		}

		log.Infof("Extracted from %s of %s input(s), %s failed, in %s",
			humanize.Comma(int64(extracted)), humanize.Comma(int64(len(inputs))),
			humanize.Comma(int64(failed)), time.Since(startTime).Round(time.Millisecond))
	},
}

func init() {
	grepCmd.Flags().StringVarP(&flagOutputPath, "output", "o", "", "Write records to file instead of stdout")
	grepCmd.Flags().StringVar(&flagMatch, "match", "", "Only scan directory files whose name matches this pattern")
	grepCmd.Flags().StringSliceVar(&flagIgnores, "ignore", nil, "Path prefixes to skip while scanning directories")

	rootCmd.AddCommand(grepCmd)
}
