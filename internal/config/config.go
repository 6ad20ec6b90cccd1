// Package config loads docsite.yaml: the site definition plus the output,
// logging and repository settings of the tool itself.
package config

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Version is the only configuration version this build reads.
const Version = "1.0"

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "docsite.yaml"

// OutputDirEnv overrides output.directory when set.
const OutputDirEnv = "DOCSITE_OUTPUT"

// Config is the root of docsite.yaml.
type Config struct {
	Version string `yaml:"version"`
	// Site is optional; when absent the built-in site definition is used.
	Site       *site.Config     `yaml:"site,omitempty"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Repository RepositoryConfig `yaml:"repository"`
}

// RepositoryConfig controls reading branch and origin from the git checkout.
type RepositoryConfig struct {
	Path   string `yaml:"path,omitempty"`
	Detect bool   `yaml:"detect"`
}

// Load reads, expands, decodes, normalizes and validates a config file.
// Variables from .env and .env.local are loaded first without overriding
// the process environment.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError(fmt.Sprintf("configuration file not found: %s", path)).
				Path(path).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			Path(path).Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if dir := os.Getenv(OutputDirEnv); dir != "" {
		cfg.Output.Directory = dir
	}
	return cfg, nil
}

// Parse is Load for in-memory content, without .env handling or the output
// override.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if stdErrors.Is(err, io.EOF) {
			return nil, errors.ConfigError("configuration file is empty").Build()
		}
		var classified *errors.ClassifiedError
		if stdErrors.As(err, &classified) {
			return nil, err
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to decode configuration").Build()
	}

	if cfg.Version != Version {
		return nil, errors.ConfigError(fmt.Sprintf("unsupported configuration version: %q (expected %s)", cfg.Version, Version)).
			Field("version").Build()
	}
	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Site == nil {
		def := site.Default()
		cfg.Site = &def
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDir
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{DefaultFormat}
	}
	if cfg.Repository.Path == "" {
		cfg.Repository.Path = "."
	}
}

func validate(cfg *Config) error {
	if err := cfg.Output.validate(); err != nil {
		return err
	}
	return cfg.Site.Validate()
}

// Init writes an example configuration embedding the built-in site.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).
			Path(path).Build()
	}

	def := site.Default()
	example := Config{
		Version: Version,
		Site:    &def,
		Output: OutputConfig{
			Directory: DefaultOutputDir,
			Formats:   []string{"hope", "hugo"},
		},
		Logging:    LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Repository: RepositoryConfig{Path: ".", Detect: true},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example config").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			Path(path).Build()
	}
	return nil
}
