package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// PathVar overrides the config file location.
const PathVar = "BLOOM_SPLASH_CONFIG"

// Backend names accepted in the config file.
const (
	BackendAuto     = "auto"
	BackendGTK      = "gtk"
	BackendFyne     = "fyne"
	BackendTerminal = "terminal"
	BackendNone     = "none"
)

// Config captures the launcher's tunables. Every field has a default matching
// the fixed paths Bloom expects, so a missing file is the normal case.
type Config struct {
	Sentinel     string
	Payload      string
	Interpreter  string // empty picks a mono install automatically
	Image        string // empty means <self>/bloom-splash.png
	Backend      string
	TimeoutTicks int
	TickInterval time.Duration
	DebugLog     string
	ChildLog     string // empty inherits stdout/stderr
}

const (
	defaultConfigPath   = "~/.config/bloom-splash/config.toml"
	defaultSentinel     = "/tmp/BloomLaunching.now"
	defaultPayload      = "Bloom.exe"
	defaultBackend      = BackendAuto
	defaultTimeoutTicks = 60
	defaultTickInterval = time.Second
	defaultDebugLog     = "/tmp/BloomSplash.log"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sentinel:     defaultSentinel,
		Payload:      defaultPayload,
		Backend:      defaultBackend,
		TimeoutTicks: defaultTimeoutTicks,
		TickInterval: defaultTickInterval,
		DebugLog:     defaultDebugLog,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		if strings.TrimSpace(path) == "" {
			// No home directory, so no default config to read.
			return cfg, nil
		}
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Sentinel     string `toml:"sentinel"`
		Payload      string `toml:"payload"`
		Interpreter  string `toml:"interpreter"`
		Image        string `toml:"image"`
		Backend      string `toml:"backend"`
		TimeoutTicks int    `toml:"timeout_ticks"`
		TickInterval string `toml:"tick_interval"`
		DebugLog     string `toml:"debug_log"`
		ChildLog     string `toml:"child_log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Sentinel); v != "" {
		cfg.Sentinel = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Payload); v != "" {
		cfg.Payload = v
	}
	if v := strings.TrimSpace(raw.Interpreter); v != "" {
		cfg.Interpreter = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Image); v != "" {
		cfg.Image = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.Backend)); v != "" {
		if !validBackend(v) {
			return Config{}, fmt.Errorf("parse config: unknown backend %q", v)
		}
		cfg.Backend = v
	}
	if raw.TimeoutTicks > 0 {
		cfg.TimeoutTicks = raw.TimeoutTicks
	}
	if v := strings.TrimSpace(raw.TickInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("parse config: invalid tick_interval %q", v)
		}
		cfg.TickInterval = d
	}
	if v := strings.TrimSpace(raw.DebugLog); v != "" {
		cfg.DebugLog = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.ChildLog); v != "" {
		cfg.ChildLog = mustExpand(v)
	}

	return cfg, nil
}

// PathFromEnv returns the config path named by env, or "" for the default.
func PathFromEnv(env map[string]string) string {
	return strings.TrimSpace(env[PathVar])
}

func validBackend(name string) bool {
	switch name {
	case BackendAuto, BackendGTK, BackendFyne, BackendTerminal, BackendNone:
		return true
	}
	return false
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
