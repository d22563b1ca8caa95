package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/emojipick/internal/emoji"
)

// Config holds application configuration.
type Config struct {
	UI        UIConfig
	Clipboard ClipboardConfig
	Database  DatabaseConfig
	History   HistoryConfig
	Data      DataConfig
	Log       LogConfig
}

// UIConfig holds picker behaviour settings.
type UIConfig struct {
	Debounce      time.Duration
	CopiedTimeout time.Duration `mapstructure:"copied_timeout"`
	RowHeight     int           `mapstructure:"row_height"`
	Overscan      int
	Mouse         bool
	Breakpoints   BreakpointsConfig
}

// BreakpointsConfig holds the terminal widths separating items-per-row tiers.
type BreakpointsConfig struct {
	Small  int
	Medium int
	Large  int
}

// ClipboardConfig selects how copied glyphs reach the system clipboard.
type ClipboardConfig struct {
	Backend string // osc52 | none
	Tmux    bool
	Screen  bool
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// HistoryConfig controls the recently copied strip.
type HistoryConfig struct {
	Enabled bool
	Limit   int
}

// DataConfig points at optional extra emoji records.
type DataConfig struct {
	ExtraFile string `mapstructure:"extra_file"`
}

// LogConfig holds the debug log destination. Empty discards logs.
type LogConfig struct {
	File string
}

const (
	BackendOSC52 = "osc52"
	BackendNone  = "none"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	bp := emoji.DefaultBreakpoints()
	return Config{
		UI: UIConfig{
			Debounce:      150 * time.Millisecond,
			CopiedTimeout: time.Second,
			RowHeight:     2,
			Overscan:      5,
			Mouse:         true,
			Breakpoints:   BreakpointsConfig{Small: bp.Small, Medium: bp.Medium, Large: bp.Large},
		},
		Clipboard: ClipboardConfig{Backend: BackendOSC52},
		Database:  DatabaseConfig{Path: filepath.Join(os.Getenv("HOME"), ".local", "share", "emojipick", "history.db")},
		History:   HistoryConfig{Enabled: true, Limit: 10},
	}
}

// Tiers converts the configured breakpoints for the emoji package.
func (c UIConfig) Tiers() emoji.Breakpoints {
	return emoji.Breakpoints{Small: c.Breakpoints.Small, Medium: c.Breakpoints.Medium, Large: c.Breakpoints.Large}
}

// Load reads configuration from file and env. Env var overrides use prefix EMOJIPICK_.
func Load() (Config, error) {
	cfg, _, err := load()
	return cfg, err
}

// LoadOrInit is Load, but when no config file exists in the default location
// it writes the resolved configuration there so users have a file to edit.
func LoadOrInit() (Config, error) {
	cfg, found, err := load()
	if err != nil || found {
		return cfg, err
	}
	if err := Save(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func load() (Config, bool, error) {
	v := newViper()

	cfgPath := os.Getenv("EMOJIPICK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "emojipick"))
		v.SetConfigName("config")
	}

	// A missing file in the search path is fine; an explicit one is not.
	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, false, fmt.Errorf("read config: %w", err)
		}
		found = false
	}
	cfg, err := decode(v)
	return cfg, found, err
}

func newViper() *viper.Viper {
	d := Defaults()
	v := viper.New()

	v.SetDefault("ui.debounce", d.UI.Debounce)
	v.SetDefault("ui.copied_timeout", d.UI.CopiedTimeout)
	v.SetDefault("ui.row_height", d.UI.RowHeight)
	v.SetDefault("ui.overscan", d.UI.Overscan)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.breakpoints.small", d.UI.Breakpoints.Small)
	v.SetDefault("ui.breakpoints.medium", d.UI.Breakpoints.Medium)
	v.SetDefault("ui.breakpoints.large", d.UI.Breakpoints.Large)
	v.SetDefault("clipboard.backend", d.Clipboard.Backend)
	v.SetDefault("clipboard.tmux", false)
	v.SetDefault("clipboard.screen", false)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.limit", d.History.Limit)
	v.SetDefault("data.extra_file", "")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	v.SetEnvPrefix("EMOJIPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return Normalize(c), nil
}

// Normalize replaces out-of-range values with defaults.
func Normalize(c Config) Config {
	d := Defaults()
	if c.UI.Debounce < 0 || c.UI.Debounce > 5*time.Second {
		c.UI.Debounce = d.UI.Debounce
	}
	if c.UI.CopiedTimeout <= 0 || c.UI.CopiedTimeout > time.Minute {
		c.UI.CopiedTimeout = d.UI.CopiedTimeout
	}
	if c.UI.RowHeight < 1 || c.UI.RowHeight > 5 {
		c.UI.RowHeight = d.UI.RowHeight
	}
	if c.UI.Overscan < 0 || c.UI.Overscan > 50 {
		c.UI.Overscan = d.UI.Overscan
	}
	if !c.UI.Tiers().Valid() {
		c.UI.Breakpoints = d.UI.Breakpoints
	}
	switch b := strings.ToLower(strings.TrimSpace(c.Clipboard.Backend)); b {
	case BackendOSC52, BackendNone:
		c.Clipboard.Backend = b
	default:
		c.Clipboard.Backend = d.Clipboard.Backend
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		c.Database.Path = d.Database.Path
	}
	if c.History.Limit < 1 || c.History.Limit > 50 {
		c.History.Limit = d.History.Limit
	}
	c.Data.ExtraFile = strings.TrimSpace(c.Data.ExtraFile)
	c.Log.File = strings.TrimSpace(c.Log.File)
	return c
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("EMOJIPICK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "emojipick", "config.toml")
	}
	return SaveAs(cfg, path)
}

// SaveAs writes cfg to path as TOML.
func SaveAs(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	cfg = Normalize(cfg)
	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.debounce", cfg.UI.Debounce.String())
	v.Set("ui.copied_timeout", cfg.UI.CopiedTimeout.String())
	v.Set("ui.row_height", cfg.UI.RowHeight)
	v.Set("ui.overscan", cfg.UI.Overscan)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("ui.breakpoints.small", cfg.UI.Breakpoints.Small)
	v.Set("ui.breakpoints.medium", cfg.UI.Breakpoints.Medium)
	v.Set("ui.breakpoints.large", cfg.UI.Breakpoints.Large)
	v.Set("clipboard.backend", cfg.Clipboard.Backend)
	v.Set("clipboard.tmux", cfg.Clipboard.Tmux)
	v.Set("clipboard.screen", cfg.Clipboard.Screen)
	v.Set("database.path", cfg.Database.Path)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("history.limit", cfg.History.Limit)
	v.Set("data.extra_file", cfg.Data.ExtraFile)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
