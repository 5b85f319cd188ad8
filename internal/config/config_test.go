package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	apperrors "github.com/agbru/fibtoolkit/internal/errors"
)

// Tests that touch the environment use t.Setenv and therefore cannot run in
// parallel.

func TestParseConfig_Defaults(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("fibtoolkit", nil, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	want := AppConfig{Mode: ModeREPL, DemoCount: DefaultDemoCount, LogLevel: DefaultLogLevel, Theme: DefaultTheme, LogFormat: DefaultLogFormat}
	if cfg != want {
		t.Errorf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("fibtoolkit", []string{"-mode", "DEMO", "-demo-count", "50", "-i", "-no-color", "-log-level", "debug", "-log-format", "Console"}, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Mode != ModeDemo {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeDemo)
	}
	if cfg.DemoCount != 50 || !cfg.Interactive || !cfg.NoColor || cfg.LogLevel != "debug" || cfg.LogFormat != "console" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"MODE", "tui")
	t.Setenv(EnvPrefix+"DEMO_COUNT", "25")
	t.Setenv(EnvPrefix+"INTERACTIVE", "yes")
	t.Setenv(EnvPrefix+"NO_COLOR", "1")
	t.Setenv(EnvPrefix+"THEME", "Light")

	var errBuf bytes.Buffer
	cfg, err := ParseConfig("fibtoolkit", nil, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Mode != ModeTUI || cfg.DemoCount != 25 || !cfg.Interactive || !cfg.NoColor || cfg.Theme != "light" {
		t.Errorf("environment overrides not applied: %+v", cfg)
	}
}

func TestParseConfig_FlagsBeatEnvironment(t *testing.T) {
	t.Setenv(EnvPrefix+"MODE", "tui")
	t.Setenv(EnvPrefix+"DEMO_COUNT", "not-a-number")

	var errBuf bytes.Buffer
	cfg, err := ParseConfig("fibtoolkit", []string{"-mode", "demo"}, &errBuf)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Mode != ModeDemo {
		t.Errorf("Mode = %q, flag should win over environment", cfg.Mode)
	}
	if cfg.DemoCount != DefaultDemoCount {
		t.Errorf("DemoCount = %d, unparsable env value should be ignored", cfg.DemoCount)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"-mode", "gui"}},
		{"negative demo count", []string{"-demo-count", "-1"}},
		{"bad log level", []string{"-log-level", "loud"}},
		{"unknown log format", []string{"-log-format", "xml"}},
		{"unknown theme", []string{"-theme", "solarized"}},
		{"unknown flag", []string{"-threshold", "4096"}},
		{"positional args", []string{"seq", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			_, err := ParseConfig("fibtoolkit", tt.args, &errBuf)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := ParseConfig("fibtoolkit", []string{"-h"}, &errBuf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("ParseConfig(-h) error = %v, want flag.ErrHelp", err)
	}
	if !bytes.Contains(errBuf.Bytes(), []byte("FIBTOOLKIT_")) {
		t.Errorf("usage should mention the environment prefix, got: %s", errBuf.String())
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
