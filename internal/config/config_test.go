package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EMOJIPICK_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Defaults()
	if cfg.UI != want.UI {
		t.Fatalf("UI = %+v, want %+v", cfg.UI, want.UI)
	}
	if cfg.Clipboard.Backend != BackendOSC52 {
		t.Fatalf("backend = %q", cfg.Clipboard.Backend)
	}
	if !cfg.History.Enabled || cfg.History.Limit != 10 {
		t.Fatalf("history = %+v", cfg.History)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[ui]
debounce = "300ms"
copied_timeout = "2s"
row_height = 1
overscan = 2
mouse = false

[ui.breakpoints]
small = 40
medium = 60
large = 80

[clipboard]
backend = "NONE"
tmux = true

[history]
enabled = false
limit = 5

[data]
extra_file = " /tmp/extra.toml "
`)
	t.Setenv("EMOJIPICK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Debounce != 300*time.Millisecond || cfg.UI.CopiedTimeout != 2*time.Second {
		t.Fatalf("timers = %v / %v", cfg.UI.Debounce, cfg.UI.CopiedTimeout)
	}
	if cfg.UI.RowHeight != 1 || cfg.UI.Overscan != 2 || cfg.UI.Mouse {
		t.Fatalf("ui = %+v", cfg.UI)
	}
	if got := cfg.UI.Tiers(); got.Small != 40 || got.Medium != 60 || got.Large != 80 {
		t.Fatalf("breakpoints = %+v", got)
	}
	if cfg.Clipboard.Backend != BackendNone || !cfg.Clipboard.Tmux {
		t.Fatalf("clipboard = %+v", cfg.Clipboard)
	}
	if cfg.History.Enabled || cfg.History.Limit != 5 {
		t.Fatalf("history = %+v", cfg.History)
	}
	if cfg.Data.ExtraFile != "/tmp/extra.toml" {
		t.Fatalf("extra file = %q", cfg.Data.ExtraFile)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "[history]\nlimit = 5\n")
	t.Setenv("EMOJIPICK_CONFIG", path)
	t.Setenv("EMOJIPICK_HISTORY_LIMIT", "20")
	t.Setenv("EMOJIPICK_UI_DEBOUNCE", "50ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.History.Limit != 20 {
		t.Fatalf("limit = %d, want env value 20", cfg.History.Limit)
	}
	if cfg.UI.Debounce != 50*time.Millisecond {
		t.Fatalf("debounce = %v, want 50ms", cfg.UI.Debounce)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Setenv("EMOJIPICK_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestNormalizeOutOfRange(t *testing.T) {
	cfg := Config{
		UI: UIConfig{
			Debounce:      -time.Second,
			CopiedTimeout: 0,
			RowHeight:     9,
			Overscan:      -1,
			Breakpoints:   BreakpointsConfig{Small: 90, Medium: 60, Large: 30},
		},
		Clipboard: ClipboardConfig{Backend: "xclip"},
		History:   HistoryConfig{Limit: 0},
	}
	got := Normalize(cfg)
	d := Defaults()
	if got.UI.Debounce != d.UI.Debounce || got.UI.CopiedTimeout != d.UI.CopiedTimeout {
		t.Fatalf("timers not reset: %+v", got.UI)
	}
	if got.UI.RowHeight != d.UI.RowHeight || got.UI.Overscan != d.UI.Overscan {
		t.Fatalf("layout not reset: %+v", got.UI)
	}
	if got.UI.Breakpoints != d.UI.Breakpoints {
		t.Fatalf("breakpoints = %+v", got.UI.Breakpoints)
	}
	if got.Clipboard.Backend != BackendOSC52 {
		t.Fatalf("backend = %q", got.Clipboard.Backend)
	}
	if got.History.Limit != d.History.Limit || got.Database.Path == "" {
		t.Fatalf("history/database not defaulted: %+v %+v", got.History, got.Database)
	}
}

func TestSaveAsThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Defaults()
	cfg.UI.Debounce = 250 * time.Millisecond
	cfg.History.Limit = 7
	cfg.Clipboard.Tmux = true
	if err := SaveAs(cfg, path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	t.Setenv("EMOJIPICK_CONFIG", path)
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.UI.Debounce != 250*time.Millisecond || got.History.Limit != 7 || !got.Clipboard.Tmux {
		t.Fatalf("saved config not read back: %+v", got)
	}
}

func TestLoadOrInitWritesDefaultsOnce(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("EMOJIPICK_CONFIG", "")

	cfg, err := LoadOrInit()
	if err != nil {
		t.Fatalf("LoadOrInit: %v", err)
	}
	path := filepath.Join(home, ".config", "emojipick", "config.toml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if cfg.UI != Defaults().UI {
		t.Fatalf("UI = %+v, want defaults", cfg.UI)
	}

	if err := os.WriteFile(path, []byte("[history]\nlimit = 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err = LoadOrInit()
	if err != nil {
		t.Fatalf("LoadOrInit (existing): %v", err)
	}
	if cfg.History.Limit != 3 {
		t.Fatalf("limit = %d, existing file was overwritten", cfg.History.Limit)
	}
}
