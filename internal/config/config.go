// Package config manages the notify-claude configuration file at
// ~/.notify-claude/config.yaml. The file is optional; Default describes the
// behavior when it is absent.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle       = "Claude complete"
	DefaultTimeout     = "10s"
	DefaultMacOSSound  = "Glass"
	DefaultBackend     = BackendNotifySend
	DefaultUrgency     = "normal"
	DefaultSoundPlayer = "paplay"
	DefaultSoundFile   = "/usr/share/sounds/freedesktop/stereo/complete.oga"
)

// Linux notification backends.
const (
	BackendNotifySend = "notify-send"
	BackendDBus       = "dbus"
)

var ErrNotFound = errors.New("config file not found")

var validUrgencies = map[string]bool{"low": true, "normal": true, "critical": true}

type Config struct {
	Title   string `yaml:"title"`
	Timeout string `yaml:"timeout"`
	MacOS   MacOS  `yaml:"macos"`
	Linux   Linux  `yaml:"linux"`
}

type MacOS struct {
	Sound string `yaml:"sound"`
}

type Linux struct {
	Backend     string `yaml:"backend"`
	Urgency     string `yaml:"urgency"`
	Sound       bool   `yaml:"sound"`
	SoundPlayer string `yaml:"sound_player"`
	SoundFile   string `yaml:"sound_file"`
}

// Dir returns the config directory path (~/.notify-claude).
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".notify-claude")
}

// Path returns the config file path (~/.notify-claude/config.yaml).
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Exists checks if the config file exists.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads and parses the config file. Returns ErrNotFound if it doesn't exist.
// Fields missing from the file keep their default values.
func Load() (*Config, error) {
	return loadFrom(Path())
}

// LoadOrDefault is Load with a missing file treated as Default.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func marshalConfig(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Default returns the config that reproduces the stock notifier behavior.
func Default() *Config {
	return &Config{
		Title:   DefaultTitle,
		Timeout: DefaultTimeout,
		MacOS:   MacOS{Sound: DefaultMacOSSound},
		Linux: Linux{
			Backend:     DefaultBackend,
			Urgency:     DefaultUrgency,
			Sound:       false,
			SoundPlayer: DefaultSoundPlayer,
			SoundFile:   DefaultSoundFile,
		},
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	switch c.Linux.Backend {
	case BackendNotifySend, BackendDBus:
	default:
		return fmt.Errorf("invalid linux backend %q (want %s or %s)", c.Linux.Backend, BackendNotifySend, BackendDBus)
	}
	if !validUrgencies[c.Linux.Urgency] {
		return fmt.Errorf("invalid urgency %q (want low, normal or critical)", c.Linux.Urgency)
	}
	if c.Linux.Sound && strings.TrimSpace(c.Linux.SoundPlayer) == "" {
		return fmt.Errorf("sound player cannot be empty when sound is enabled")
	}
	return nil
}

// TimeoutDuration parses Timeout. It must be positive.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q: must be positive", c.Timeout)
	}
	return d, nil
}
