package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Sentinel != "/tmp/BloomLaunching.now" {
		t.Fatalf("Sentinel = %q, want %q", cfg.Sentinel, "/tmp/BloomLaunching.now")
	}
	if cfg.TimeoutTicks != 60 || cfg.TickInterval != time.Second {
		t.Fatalf("timeout = %d x %v, want 60 x 1s", cfg.TimeoutTicks, cfg.TickInterval)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "bloom-splash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("backend = \"none\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != BackendNone {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, BackendNone)
	}
}

func TestLoad_NoHomeFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_NoHomeExplicitTildePathFails(t *testing.T) {
	t.Setenv("HOME", "")

	if _, err := Load("~/bloom-splash.toml"); err == nil {
		t.Fatalf("Load succeeded for an explicit path under an unresolvable home")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
sentinel = "  /run/user/1000/bloom.now "
payload = " BloomAlpha.exe "
interpreter = "/opt/mono6/bin/mono"
image = "~/splash.png"
backend = " Terminal "
timeout_ticks = 90
tick_interval = "500ms"
debug_log = "~/.cache/bloom-splash.log"
child_log = "~/.cache/bloom-child.log"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Sentinel != "/run/user/1000/bloom.now" {
		t.Fatalf("Sentinel = %q", cfg.Sentinel)
	}
	if cfg.Payload != "BloomAlpha.exe" {
		t.Fatalf("Payload = %q, want %q", cfg.Payload, "BloomAlpha.exe")
	}
	if cfg.Interpreter != "/opt/mono6/bin/mono" {
		t.Fatalf("Interpreter = %q, want %q", cfg.Interpreter, "/opt/mono6/bin/mono")
	}
	if cfg.Image != filepath.Join(home, "splash.png") {
		t.Fatalf("Image = %q, want it under HOME", cfg.Image)
	}
	if cfg.Backend != BackendTerminal {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, BackendTerminal)
	}
	if cfg.TimeoutTicks != 90 {
		t.Fatalf("TimeoutTicks = %d, want 90", cfg.TimeoutTicks)
	}
	if cfg.TickInterval != 500*time.Millisecond {
		t.Fatalf("TickInterval = %v, want 500ms", cfg.TickInterval)
	}
	if !strings.HasPrefix(cfg.DebugLog, home) || !strings.HasPrefix(cfg.ChildLog, home) {
		t.Fatalf("log paths = %q, %q, want them under HOME %q", cfg.DebugLog, cfg.ChildLog, home)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
sentinel = "   "
payload = ""
timeout_ticks = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"invalid toml", `sentinel = [`, "parse config"},
		{"unknown backend", `backend = "qt"`, "unknown backend"},
		{"bad interval", `tick_interval = "soon"`, "invalid tick_interval"},
		{"negative interval", `tick_interval = "-1s"`, "invalid tick_interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestPathFromEnv(t *testing.T) {
	if got := PathFromEnv(map[string]string{PathVar: " /etc/bloom.toml "}); got != "/etc/bloom.toml" {
		t.Fatalf("PathFromEnv = %q", got)
	}
	if got := PathFromEnv(nil); got != "" {
		t.Fatalf("PathFromEnv(nil) = %q, want empty", got)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
