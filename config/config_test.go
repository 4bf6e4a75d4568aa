package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/termpaint/core"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termpaint.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.InitialColor() != core.Black {
		t.Errorf("Expected black initial color, got %v", cfg.InitialColor())
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by default")
	}
	if cfg.Dialog.Visible {
		t.Error("Expected dialog hidden by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected info level, got %q", cfg.Log.Level)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Canvas.Color != "#000000" {
		t.Errorf("Expected default color, got %q", cfg.Canvas.Color)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
[canvas]
color = "#ed1c24"

[dialog]
visible = true
ascii_icons = true

[audio]
enabled = true
volume = 0.25

[log]
level = "debug"

[keys]
x = "quit"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := cfg.InitialColor(); got != core.RGB(237, 28, 36) {
		t.Errorf("Expected red, got %v", got)
	}
	if !cfg.Dialog.Visible || !cfg.Dialog.ASCIIIcons {
		t.Errorf("Expected dialog flags set, got %+v", cfg.Dialog)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.25 {
		t.Errorf("Expected audio enabled at 0.25, got %+v", cfg.Audio)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected debug, got %q", cfg.Log.Level)
	}
	if cfg.Keys["x"] != "quit" {
		t.Errorf("Expected key x bound to quit, got %q", cfg.Keys["x"])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[canvas\ncolor = 1"},
		{"unknown key", "[canvas]\nbrush = 3\n"},
		{"bad color", "[canvas]\ncolor = \"red\"\n"},
		{"volume range", "[audio]\nvolume = 2.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.content)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAudioEnabled: "true",
		EnvVolume:       "150",
		EnvLogFile:      "/tmp/termpaint.log",
		EnvLogLevel:     "WARN",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled from env")
	}
	if cfg.Audio.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Audio.Volume)
	}
	if cfg.Log.File != "/tmp/termpaint.log" {
		t.Errorf("Expected log file from env, got %q", cfg.Log.File)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected lowercased level, got %q", cfg.Log.Level)
	}
}

func TestApplyEnvIgnoresMalformed(t *testing.T) {
	env := map[string]string{
		EnvAudioEnabled: "maybe",
		EnvVolume:       "loud",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	if cfg.Audio.Enabled {
		t.Error("Expected audio to stay disabled")
	}
	if cfg.Audio.Volume != Default().Audio.Volume {
		t.Errorf("Expected default volume, got %v", cfg.Audio.Volume)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want core.Pixel
		ok   bool
	}{
		{"#000000", core.Black, true},
		{"#ffffff", core.White, true},
		{"#FFF", core.White, true},
		{" #22b14c ", core.RGB(34, 177, 76), true},
		{"22b14c", core.Pixel{}, false},
		{"#12345", core.Pixel{}, false},
		{"", core.Pixel{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				if got != tt.want {
					t.Errorf("Expected %v, got %v", tt.want, got)
				}
				return
			}
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Expected ErrInvalidColor, got %v", err)
			}
		})
	}
}

func TestWriteLoadsBack(t *testing.T) {
	cfg := Default()
	cfg.Dialog.Visible = true
	cfg.Keys["x"] = "quit"

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	loaded, err := Load(writeFile(t, buf.String()))
	if err != nil {
		t.Fatalf("Expected written config to load, got %v", err)
	}
	if !loaded.Dialog.Visible || loaded.Keys["x"] != "quit" {
		t.Errorf("Expected written values preserved, got %+v", loaded)
	}
}
