package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the config directory and the default data directory.
	AppName = "nfa"
	// FileName is the config file inside the user config directory.
	FileName = "config.yaml"

	// IDSchemeRandom selects 16 character random hex IDs.
	IDSchemeRandom = "random"
	// IDSchemeSortable selects 20 character time-ordered IDs.
	IDSchemeSortable = "sortable"
)

// Config is the effective configuration of the nfa CLI.
// Environment variables use the NFA_ prefix, e.g. NFA_DATA_DIR.
type Config struct {
	DataDir     string        `yaml:"data_dir" env:"DATA_DIR"`
	LogLevel    string        `yaml:"log_level" env:"LOG_LEVEL"`
	CacheSize   int           `yaml:"cache_size" env:"CACHE_SIZE"`
	IDScheme    string        `yaml:"id_scheme" env:"ID_SCHEME"`
	OpenTimeout time.Duration `yaml:"open_timeout" env:"OPEN_TIMEOUT"`
}

// Default returns the built-in configuration. The store lives in ~/.nfa.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "could not find home directory")
	}

	return &Config{
		DataDir:     filepath.Join(home, "."+AppName),
		LogLevel:    "info",
		CacheSize:   0,
		IDScheme:    IDSchemeRandom,
		OpenTimeout: time.Second,
	}, nil
}

// DefaultPath is the configuration file in the user config directory.
func DefaultPath() string {
	return filepath.Join(configdir.LocalConfig(AppName), FileName)
}

// Load layers defaults, the YAML file at path and NFA_* environment
// variables. A missing file is not an error; an empty path means DefaultPath.
func Load(path string) (*Config, error) {
	conf, err := Default()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if path == "" {
		path = DefaultPath()
	}
	if err := conf.loadFile(path); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := env.ParseWithOptions(conf, env.Options{Prefix: "NFA_"}); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "could not read config file %s", path)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "could not parse config file %s", path)
	}
	return nil
}

// Validate checks values that cannot be caught by parsing.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	if c.CacheSize < 0 {
		return errors.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	switch c.IDScheme {
	case IDSchemeRandom, IDSchemeSortable:
	default:
		return errors.Errorf("unknown id_scheme %q", c.IDScheme)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, errors.Wrapf(err, "invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := configdir.MakePath(filepath.Dir(path)); err != nil {
		return errors.WithStack(err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
