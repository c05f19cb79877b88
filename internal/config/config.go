package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/leengari/pagedb/internal/storage/table"
)

const (
	DefaultPrompt        = "db > "
	DefaultLogLevel      = "info"
	DefaultFlushInterval = 500 * time.Millisecond
)

type Config struct {
	Shell   ShellConfig   `yaml:"shell"`
	Table   TableConfig   `yaml:"table"`
	Logging LoggingConfig `yaml:"logging"`
}

type ShellConfig struct {
	Prompt string `yaml:"prompt"`
}

type TableConfig struct {
	MaxPages int `yaml:"max_pages"` // page capacity; rows per page is fixed by the row layout
}

type LoggingConfig struct {
	Level         string        `yaml:"level"`          // debug, info, warn, error
	AddSource     bool          `yaml:"add_source"`
	SeqURL        string        `yaml:"seq_url"`        // empty disables the Seq sink
	FlushInterval time.Duration `yaml:"flush_interval"` // Seq batch flush interval
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt: DefaultPrompt,
		},
		Table: TableConfig{
			MaxPages: table.DefaultMaxPages,
		},
		Logging: LoggingConfig{
			Level:         DefaultLogLevel,
			FlushInterval: DefaultFlushInterval,
		},
	}
}

// Load reads configPath over the defaults. With an empty path it looks for
// configs/pagedb.yaml then pagedb.yaml and falls back to defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/pagedb.yaml", "pagedb.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, errors.Wrapf(err, "parse %s", p)
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", configPath)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Shell.Prompt == "" {
		cfg.Shell.Prompt = DefaultPrompt
	}
	if cfg.Table.MaxPages <= 0 {
		cfg.Table.MaxPages = table.DefaultMaxPages
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.FlushInterval <= 0 {
		cfg.Logging.FlushInterval = DefaultFlushInterval
	}
}
