// Package config loads the layered notebus configuration. Precedence,
// highest first: command-line flag, user file, system file, built-in
// default.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// SystemFile is the system-wide configuration file.
	SystemFile = "/etc/notebus/config.yaml"

	configDir  = "notebus"
	configFile = "config.yaml"
)

// Config holds the resolved configuration of one invocation.
type Config struct {
	// Application forces the backend choice: "Tomboy", "Gnote", or empty
	// for autodetection.
	Application string `yaml:"application" json:"application"`

	// Display is the X display exported before connecting to the bus,
	// for note applications running on another display.
	Display string `yaml:"display" json:"display"`
}

// UserFile returns the user-level configuration file path. The
// NOTEBUS_CONFIG environment variable overrides it.
func UserFile() string {
	if env := os.Getenv("NOTEBUS_CONFIG"); env != "" {
		return env
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return configFile
	}
	return filepath.Join(dir, configDir, configFile)
}

// Load reads the system file, then merges the user file over it. Missing
// files are not errors; unknown keys are ignored.
func Load(systemFile, userFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetConfigFile(systemFile)
	if err := v.ReadInConfig(); err != nil && !isMissing(err) {
		return nil, &LoadError{Path: systemFile, Err: err}
	}

	v.SetConfigFile(userFile)
	if err := v.MergeInConfig(); err != nil && !isMissing(err) {
		return nil, &LoadError{Path: userFile, Err: err}
	}

	cfg := &Config{
		Application: v.GetString("application"),
		Display:     v.GetString("display"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path in YAML form, creating the parent
// directory if needed.
func (c *Config) Save(path string) error {
	if err := c.validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) validate() error {
	switch c.Application {
	case "", "Tomboy", "Gnote":
		return nil
	default:
		return &LoadError{
			Err: errors.New(
				"application must be one of Tomboy or Gnote, or empty for autodetection",
			),
		}
	}
}

func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}
