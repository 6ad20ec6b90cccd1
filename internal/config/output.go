package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

const (
	DefaultOutputDir = "build"
	DefaultFormat    = "hope"
)

// OutputConfig selects where generated files go and which flavors run.
type OutputConfig struct {
	Directory string   `yaml:"directory"`
	Formats   []string `yaml:"formats,omitempty"`
	Clean     bool     `yaml:"clean"` // remove files the current run did not produce
}

func (o OutputConfig) validate() error {
	seen := make(map[string]bool, len(o.Formats))
	for i, f := range o.Formats {
		if f == "" {
			return errors.ValidationError("output format must not be empty").
				Field(fmt.Sprintf("output.formats[%d]", i)).Build()
		}
		if seen[f] {
			return errors.ValidationError(fmt.Sprintf("duplicate output format %q", f)).
				Field(fmt.Sprintf("output.formats[%d]", i)).Build()
		}
		seen[f] = true
	}
	return nil
}

// normalize case-folds enumerations and rejects unknown log settings.
func normalize(cfg *Config) error {
	level, err := logLevels.Parse(string(cfg.Logging.Level))
	if err != nil {
		return errors.ValidationError(err.Error()).Field("logging.level").Build()
	}
	cfg.Logging.Level = level

	format, err := logFormats.Parse(string(cfg.Logging.Format))
	if err != nil {
		return errors.ValidationError(err.Error()).Field("logging.format").Build()
	}
	cfg.Logging.Format = format

	for i, f := range cfg.Output.Formats {
		cfg.Output.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return nil
}
