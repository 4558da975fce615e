package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/scylladb/go-set/strset"

	"github.com/soxt/soxt/pkg/config"
	"github.com/soxt/soxt/pkg/convert"
	"github.com/soxt/soxt/pkg/extract"
	"github.com/soxt/soxt/pkg/httputils"
	"github.com/soxt/soxt/pkg/paths"
	"github.com/soxt/soxt/pkg/regex"
	"github.com/soxt/soxt/pkg/spectrum"
)

// two whitespace-separated numeric columns, one data point per line
const spectrumRowPattern = `^[ \t]*([-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)[ \t]+([-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)[ \t]*$`

func isRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// resolveInputs expands the given arguments into a deduplicated, ordered
// input list. Directories are traversed recursively; matchPattern (when
// set) filters discovered file names, and ignores drops path prefixes.
func resolveInputs(args []string, matchPattern string, ignores []string) ([]string, error) {
	var matcher *regex.Pattern
	if matchPattern != "" {
		var err error
		matcher, err = regex.Compile(matchPattern)
		if err != nil {
			return nil, fmt.Errorf("compile match pattern: %w", err)
		}
	}

	seen := strset.New()
	var inputs []string

	add := func(input string) {
		if !seen.Has(input) {
			seen.Add(input)
			inputs = append(inputs, input)
		}
	}

	for _, arg := range args {
		if isRemote(arg) {
			add(arg)
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat input: %w", err)
		}

		if !info.IsDir() {
			add(arg)
			continue
		}

		found, _ := paths.InFolder(arg, func(path string) *string {
			if paths.IsIgnored(path, ignores) {
				return nil
			}
			if matcher != nil {
				ok, err := regex.Check(filepath.Base(path), matcher)
				if err != nil || !ok {
					return nil
				}
			}
			return &path
		})

		// fastwalk discovery order is nondeterministic
		sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
		for _, p := range found {
			add(p.Path)
		}
	}

	return inputs, nil
}

func readInput(input string, fetcher *httputils.Fetcher) (string, error) {
	if isRemote(input) {
		return fetcher.FetchText(input)
	}

	b, err := os.ReadFile(input)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// runProfile applies a profile's pattern set and table queries to text,
// aggregating everything into one record keyed by pattern/table name.
func runProfile(text string, profile config.ProfileConfig, conv extract.Conv[any]) (extract.Record, error) {
	record := extract.Record{}

	if len(profile.Patterns) > 0 {
		result, err := extract.Match(text, profile.Patterns, conv, extract.MatchOptions{
			TerminateOnMatch: profile.TerminateOnMatch,
		})
		if err != nil {
			return nil, err
		}

		for name := range profile.Patterns {
			record.Attach(name, result.Get(name))
		}
	}

	for name, tc := range profile.Tables {
		tableConv := conv
		if tc.Postprocess != "" {
			var err error
			tableConv, err = convert.Resolve(tc.Postprocess)
			if err != nil {
				return nil, fmt.Errorf("table %q: %w", name, err)
			}
		}

		query := extract.TableQuery{
			Header: tc.Header,
			Row:    tc.Row,
			Footer: tc.Footer,
		}

		if tc.LastOnly {
			table, err := extract.LastTable(text, query, tableConv)
			if err != nil {
				if errors.Is(err, extract.ErrNoTable) {
					return nil, fmt.Errorf("table %q: %w", name, err)
				}
				return nil, err
			}
			record.Attach(name, table)
			continue
		}

		tables, err := extract.Tables(text, query, tableConv)
		if err != nil {
			return nil, err
		}
		record.Attach(name, tables)
	}

	return record, nil
}

func writeRecords(records []extract.Record, outputPath string) error {
	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// splitLabelArg splits an optional "label=path" plot argument; a bare
// path is labeled by its file name without extension.
func splitLabelArg(arg string) (string, string) {
	if label, path, ok := strings.Cut(arg, "="); ok && label != "" && !isRemote(arg) {
		return label, path
	}

	base := filepath.Base(arg)
	return strings.TrimSuffix(base, filepath.Ext(base)), arg
}

// readSpectrumFile parses a two-column numeric data file into a spectrum,
// using the pattern matcher itself for the row scan.
func readSpectrumFile(path, xLabel, yLabel string) (*spectrum.Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result, err := extract.Match(string(b), map[string]string{"point": spectrumRowPattern},
		extract.Float, extract.MatchOptions{})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	points := result.Get("point")
	if len(points) == 0 {
		return nil, fmt.Errorf("no data points found in %s", path)
	}

	data := &spectrum.Data{
		XValues: make([]float64, 0, len(points)),
		YValues: make([]float64, 0, len(points)),
		XAxis:   xLabel,
		YAxis:   yLabel,
	}
	for _, p := range points {
		data.XValues = append(data.XValues, p[0])
		data.YValues = append(data.YValues, p[1])
	}

	return data, nil
}

// parseRange parses a "min:max" axis limit.
func parseRange(s string) (*[2]float64, error) {
	if s == "" {
		return nil, nil
	}

	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid range %q, expected min:max", s)
	}

	minV, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range minimum %q: %w", lo, err)
	}
	maxV, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range maximum %q: %w", hi, err)
	}

	return &[2]float64{minV, maxV}, nil
}
