package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/soxt/soxt/pkg/logger"
	"github.com/soxt/soxt/pkg/stringutils"
)

type TableConfig struct {
	Header string `yaml:"header" koanf:"header"`
	Row    string `yaml:"row" koanf:"row"`
	Footer string `yaml:"footer" koanf:"footer"`
	// Postprocess overrides the profile-level postprocess for this table.
	Postprocess string `yaml:"postprocess" koanf:"postprocess"`
	// LastOnly keeps only the final table, e.g. the converged block of an
	// iterative run.
	LastOnly bool `yaml:"last_only" koanf:"last_only"`
}

type ProfileConfig struct {
	Patterns         map[string]string      `yaml:"patterns" koanf:"patterns"`
	Tables           map[string]TableConfig `yaml:"tables" koanf:"tables"`
	Postprocess      string                 `yaml:"postprocess" koanf:"postprocess"`
	TerminateOnMatch bool                   `yaml:"terminate_on_match" koanf:"terminate_on_match"`
}

type PlotConfig struct {
	Palette  string  `yaml:"palette" koanf:"palette"`
	XShift   float64 `yaml:"xshift" koanf:"xshift"`
	YShift   float64 `yaml:"yshift" koanf:"yshift"`
	Stack    bool    `yaml:"stack" koanf:"stack"`
	WidthIn  float64 `yaml:"width_in" koanf:"width_in"`
	HeightIn float64 `yaml:"height_in" koanf:"height_in"`
}

type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout" koanf:"timeout"`
	RequestsPerSecond int           `yaml:"requests_per_second" koanf:"requests_per_second"`
}

type Configuration struct {
	Profiles map[string]ProfileConfig `yaml:"profiles" koanf:"profiles"`
	Plot     PlotConfig               `yaml:"plot" koanf:"plot"`
	Fetch    FetchConfig              `yaml:"fetch" koanf:"fetch"`
}

/* Vars */

var (
	cfgPath = ""

	Delimiter = "."
	Config    *Configuration
	K         = koanf.New(Delimiter)

	// Internal
	log = logger.GetLogger("cfg")
)

/* Public */

func Init(configFilePath string) error {
	// set package variables
	cfgPath = configFilePath

	// load config
	if err := K.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
		return fmt.Errorf("load file: %w", err)
	}

	// load environment variables
	if err := K.Load(env.Provider("SOXT__", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "SOXT__")), "_", ".", -1)
	}), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	// unmarshal config
	if err := K.Unmarshal("", &Config); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	log.Debugf("Loaded %d extraction profile(s)", len(Config.Profiles))

	return nil
}

func ShowUsing() {
	log.Infof("Using %s = %q", stringutils.LeftJust("CONFIG", " ", 10), cfgPath)
}
