// Package config manages the durfmt configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/clarafu/envstruct"
	"gopkg.in/yaml.v3"
)

// Output formats accepted in the config file.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputCBOR  = "cbor"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Validation errors.
var (
	ErrInvalidOutput = errors.New("invalid output format")
	ErrInvalidColor  = errors.New("invalid color mode")
)

// Config holds durfmt settings.
type Config struct {
	// Output is the default rendering format.
	Output string `yaml:"output"`

	// Color controls styling of text and table output.
	Color string `yaml:"color"`

	// Verbose enables debug logging on stderr.
	Verbose bool `yaml:"verbose"`
}

// envOverrides mirrors Config for environment variables. Fields stay empty
// when the variable is unset.
type envOverrides struct {
	Output  string `env:"DURFMT_OUTPUT"`
	Color   string `env:"DURFMT_COLOR"`
	Verbose string `env:"DURFMT_VERBOSE"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputText,
		Color:  ColorAuto,
	}
}

// ConfigPath returns the path to the config file.
// Uses $XDG_CONFIG_HOME/durfmt/config.yaml, falling back to
// ~/.config/durfmt/config.yaml.
func ConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "durfmt", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "durfmt", "config.yaml")
	}
	return filepath.Join(home, ".config", "durfmt", "config.yaml")
}

// Load reads the config from ConfigPath.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path. A missing file yields DefaultConfig.
// Fields absent from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from DURFMT_OUTPUT, DURFMT_COLOR and
// DURFMT_VERBOSE. Unset variables leave the field unchanged.
func (c *Config) ApplyEnv() error {
	var env envOverrides

	err := envstruct.Envstruct{
		TagName: "env",
		Parser: envstruct.Parser{
			Delimiter: ",",
			Unmarshaler: func(p []byte, dest interface{}) error {
				switch x := dest.(type) {
				case *string:
					*x = string(p)
					return nil
				default:
					return fmt.Errorf("cannot decode env value into %T", dest)
				}
			},
		},
	}.FetchEnv(&env)
	if err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if env.Output != "" {
		c.Output = env.Output
	}
	if env.Color != "" {
		c.Color = env.Color
	}
	if env.Verbose != "" {
		v, err := strconv.ParseBool(env.Verbose)
		if err != nil {
			return fmt.Errorf("DURFMT_VERBOSE: %w", err)
		}
		c.Verbose = v
	}

	return c.Validate()
}

// Validate lowercases and trims Output and Color, then checks that they
// hold known values.
func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))

	switch c.Output {
	case OutputText, OutputTable, OutputJSON, OutputYAML, OutputCBOR:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}

	return nil
}

// Save writes the config to ConfigPath.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to path, creating the parent directory.
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// Write atomically via temp file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename config: %w", err)
	}

	return nil
}
