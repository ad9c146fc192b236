package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/aretw0/wasteland/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "wasteland.yaml"

// Config holds the settings shared by the CLI commands.
// Command-line flags override values loaded from file.
type Config struct {
	Map         string       `mapstructure:"map"`
	Query       domain.Query `mapstructure:"query"`
	StepLimit   uint64       `mapstructure:"step_limit"`
	Parallelism int          `mapstructure:"parallelism"`
	Format      string       `mapstructure:"format"`
	LogLevel    string       `mapstructure:"log_level"`
	LogFormat   string       `mapstructure:"log_format"`
	CacheDir    string       `mapstructure:"cache_dir"`
	Redis       RedisConfig  `mapstructure:"redis"`
	Server      ServerConfig `mapstructure:"server"`
}

// RedisConfig enables the report cache when URL is set.
// It takes precedence over CacheDir.
type RedisConfig struct {
	URL    string        `mapstructure:"url"`
	Prefix string        `mapstructure:"prefix"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Query:       domain.DefaultQuery(),
		Parallelism: 1,
		Format:      "text",
		LogLevel:    "info",
		LogFormat:   "text",
		Redis:       RedisConfig{TTL: 24 * time.Hour},
		Server:      ServerConfig{Port: 8080},
	}
}

// Load reads path over the defaults. With an empty path, DefaultFile is used
// if it exists; otherwise the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge decodes a YAML document onto cfg. Only the keys present are changed.
// Scalars are weakly typed, so "step_limit: '100'" and "ttl: 1h" both decode.
func (c *Config) Merge(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	if raw == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
