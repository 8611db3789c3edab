// Package config loads the keymapd daemon configuration.
package config

import (
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/keyboards"
	"fmt"
	"github.com/adrg/xdg"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
)

const (
	BackendMemory = "memory"
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	OutputUinput = "uinput"
	OutputLog    = "log"
)

type Config struct {
	Keyboard     string                `yaml:"keyboard"`
	Scanner      ScannerConfig         `yaml:"scanner"`
	Store        StoreConfig           `yaml:"store"`
	Output       OutputConfig          `yaml:"output"`
	Capabilities firmware.Capabilities `yaml:"capabilities"`
	MetricsAddr  string                `yaml:"metrics_addr"`
}

type ScannerConfig struct {
	// Socket is the scanner's unix socket. Empty means the scanner default.
	Socket string `yaml:"socket"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type OutputConfig struct {
	Device string `yaml:"device"`
	Name   string `yaml:"name"`
}

func Dir() string {
	return filepath.Join(xdg.ConfigHome, "keymapd")
}

// DefaultPath is $XDG_CONFIG_HOME/keymapd/config.yaml.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func DefaultConfig() *Config {
	return &Config{
		Keyboard: "planck",
		Store: StoreConfig{
			Backend: BackendSQLite,
			Path:    filepath.Join(xdg.DataHome, "keymapd", "settings.db"),
		},
		Output: OutputConfig{
			Device: OutputUinput,
			Name:   "keymapd virtual keyboard",
		},
		Capabilities: firmware.Capabilities{
			Audio:    true,
			Encoders: true,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if kb := os.Getenv("KEYMAPD_KEYBOARD"); kb != "" {
		c.Keyboard = kb
	}
	if addr := os.Getenv("KEYMAPD_METRICS_ADDR"); addr != "" {
		c.MetricsAddr = addr
	}
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var err error

	if _, lookupErr := keyboards.Lookup(c.Keyboard); lookupErr != nil {
		err = multierr.Append(err, lookupErr)
	}

	switch c.Store.Backend {
	case BackendMemory:
	case BackendJSON, BackendSQLite:
		if c.Store.Path == "" {
			err = multierr.Append(err, fmt.Errorf("store backend %s needs a path", c.Store.Backend))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown store backend %q", c.Store.Backend))
	}

	switch c.Output.Device {
	case OutputUinput:
		if c.Output.Name == "" {
			err = multierr.Append(err, fmt.Errorf("uinput output needs a device name"))
		}
	case OutputLog:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown output device %q", c.Output.Device))
	}

	return err
}
