// Package config loads heron.yml project settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Output formats accepted by output.format
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config represents heron.yml configuration
type Config struct {
	Schemas SchemasConfig `mapstructure:"schemas"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// SchemasConfig locates cube schema files
type SchemasConfig struct {
	Path       string   `mapstructure:"path"`
	Extensions []string `mapstructure:"extensions"`
}

// OutputConfig controls how cubes are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from path, or from heron.yml in the working
// directory when path is empty. A missing heron.yml yields the defaults; a
// missing explicit path is an error. HERON_* environment variables override
// file values (e.g., HERON_OUTPUT_FORMAT=json).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("heron")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("HERON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Schemas: SchemasConfig{
			Path:       "schemas",
			Extensions: []string{".yml", ".yaml"},
		},
		Output: OutputConfig{Format: FormatYAML},
	}
}

// Validate checks values that viper cannot type-check
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("invalid output.format '%s' (supported: yaml, json)", c.Output.Format)
	}
	if c.Schemas.Path == "" {
		return fmt.Errorf("schemas.path cannot be empty")
	}
	if len(c.Schemas.Extensions) == 0 {
		return fmt.Errorf("schemas.extensions cannot be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("schemas.path", d.Schemas.Path)
	v.SetDefault("schemas.extensions", d.Schemas.Extensions)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("log.verbose", d.Log.Verbose)
}
