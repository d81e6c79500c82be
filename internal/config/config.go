package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

var (
	// ErrInvalidDebounce is returned for a zero or negative debounce delay
	ErrInvalidDebounce = errors.New("debounce must be positive")
	// ErrInvalidLogLevel is returned for a log level zap does not know
	ErrInvalidLogLevel = errors.New("unknown log level")
	// ErrInvalidSize is returned for a negative ui width or row count
	ErrInvalidSize = errors.New("ui sizes must not be negative")
)

// Config represents the application configuration
type Config struct {
	Debounce   Duration    `toml:"debounce"`
	PeopleFile string      `toml:"people_file"`
	Mouse      bool        `toml:"mouse"`
	Log        LogSettings `toml:"log"`
	UI         UISettings  `toml:"ui"`
}

// LogSettings controls where and how much is logged
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Width            int    `toml:"width"`
	MaxRows          int    `toml:"max_rows"` // 0 shows every suggestion
	TitlePlaceholder string `toml:"title_placeholder"`
	InputPlaceholder string `toml:"input_placeholder"`
	NoMatches        string `toml:"no_matches"`
}

// Duration is a time.Duration written as a string such as "300ms"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// service is the concrete implementation
type service struct {
	filePath string
}

// NewService creates a config service rooted at the user config directory
func NewService() Service {
	return NewServiceAt(DefaultPath())
}

// NewServiceAt creates a config service for an explicit file
func NewServiceAt(path string) Service {
	return &service{filePath: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/peoplepicker/config.toml or the
// platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "peoplepicker", "config.toml")
}

func (cs *service) Path() string {
	return cs.filePath
}

// Load loads the service's file. A missing file yields DefaultConfig.
func (cs *service) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their default values.
func (cs *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values that would break the picker at runtime
func (c *Config) Validate() error {
	if c.Debounce.Duration <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDebounce, c.Debounce)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if c.UI.Width < 0 || c.UI.MaxRows < 0 {
		return fmt.Errorf("%w: width %d, max_rows %d", ErrInvalidSize, c.UI.Width, c.UI.MaxRows)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Debounce: Duration{300 * time.Millisecond},
		Mouse:    true,
		Log: LogSettings{
			File:  "peoplepicker.log",
			Level: "info",
		},
		UI: UISettings{
			Width:            40,
			MaxRows:          10,
			TitlePlaceholder: "No selected person",
			InputPlaceholder: "Enter a part of the name",
			NoMatches:        "No matching suggestions",
		},
	}
}
