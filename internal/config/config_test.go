package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg.Editor != want.Editor || cfg.UI != want.UI {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
	if cfg.Log.ZerologLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v", cfg.Log.ZerologLevel())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = 8
expand_tabs = false

[ui]
theme = "monokai"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabWidth != 8 || cfg.Editor.ExpandTabs {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Editor.PageJump != 60 || !cfg.UI.LineNumbers {
		t.Errorf("defaults lost: %+v %+v", cfg.Editor, cfg.UI)
	}
	if cfg.UI.ThemeOrDefault() != "monokai" {
		t.Errorf("theme = %q", cfg.UI.ThemeOrDefault())
	}
	if cfg.Log.ZerologLevel() != zerolog.DebugLevel {
		t.Errorf("level = %v", cfg.Log.ZerologLevel())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DELTA_THEME", "dracula")
	t.Setenv("DELTA_LOG_LEVEL", "error")
	t.Setenv("DELTA_LOG_FILE", "/tmp/delta-test.log")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "dracula" {
		t.Errorf("theme = %q", cfg.UI.Theme)
	}
	if cfg.Log.ZerologLevel() != zerolog.ErrorLevel {
		t.Errorf("level = %v", cfg.Log.ZerologLevel())
	}
	if cfg.Log.File != "/tmp/delta-test.log" {
		t.Errorf("file = %q", cfg.Log.File)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "[editor\ntab_width = ")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("err = %v", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = 0
page_jump = -1

[log]
level = "loud"
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"editor.tab_width", "editor.page_jump", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestThemeOrDefault(t *testing.T) {
	if got := (UIConfig{}).ThemeOrDefault(); got != "vulcan" {
		t.Errorf("got %q", got)
	}
}
