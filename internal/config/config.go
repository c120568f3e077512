// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/seek/internal/logger"
	"github.com/bethropolis/seek/internal/search"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Search SearchConfig  `toml:"search"`
	Editor EditorConfig  `toml:"editor"`
}

// SearchConfig holds the default search options.
type SearchConfig struct {
	Wrap          bool   `toml:"wrap"`
	CaseSensitive bool   `toml:"case_sensitive"`
	WholeWord     bool   `toml:"whole_word"`
	RegExp        bool   `toml:"regexp"`
	Backwards     bool   `toml:"backwards"`
	Scope         string `toml:"scope"` // "all" or "selection"
	Marker        bool   `toml:"marker"` // Underline matches in output
}

// EditorConfig holds settings for the surrounding editor integration.
type EditorConfig struct {
	SystemClipboard bool `toml:"system_clipboard"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Search: SearchConfig{
			Scope:  DefaultScope,
			Marker: DefaultMarker,
		},
		Editor: EditorConfig{
			SystemClipboard: SystemClipboard,
		},
	}
}

// DefaultPath returns ~/.config/seek/config.toml, or "" if the user config
// directory is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		logger.Debugf("Config file not found: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	logger.Debugf("Loaded configuration from: %s", filePath)
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if _, err := search.ParseScope(c.Search.Scope); err != nil {
		logger.Warnf("Config: %v, using %q", err, defaults.Search.Scope)
		c.Search.Scope = defaults.Search.Scope
	}
}

// Load builds the configuration: defaults, then the TOML file at
// configFilePath (or DefaultPath when empty), then flag overrides.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, nil
}

// SearchOptions converts the search section into engine options for needle.
func (c *Config) SearchOptions(needle string) search.Options {
	scope, err := search.ParseScope(c.Search.Scope)
	if err != nil {
		scope = search.ScopeAll
	}
	return search.Options{
		Needle:        needle,
		Backwards:     c.Search.Backwards,
		Wrap:          c.Search.Wrap,
		CaseSensitive: c.Search.CaseSensitive,
		WholeWord:     c.Search.WholeWord,
		RegExp:        c.Search.RegExp,
		Scope:         scope,
	}
}
