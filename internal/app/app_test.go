package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/agbru/fibtoolkit/internal/config"
	apperrors "github.com/agbru/fibtoolkit/internal/errors"
)

func notTerminal(io.Writer) bool { return false }

func newTestApp(t *testing.T, input string, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"fibtoolkit"}, args...), &errBuf,
		WithInput(strings.NewReader(input)),
		WithTerminalDetector(notTerminal),
	)
	if err != nil {
		t.Fatalf("New(%v) error = %v (stderr: %s)", args, err, errBuf.String())
	}
	return a, &errBuf
}

func TestNew_Help(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"fibtoolkit", "-h"}, &errBuf)
	if !IsHelpError(err) {
		t.Errorf("New(-h) error = %v, want help error", err)
	}
}

func TestNew_InvalidFlag(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"fibtoolkit", "-mode", "gui"}, &errBuf)
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("New(-mode gui) error = %v, want ConfigError", err)
	}
	if IsHelpError(err) {
		t.Error("a config error is not a help error")
	}
}

func TestRun_REPL(t *testing.T) {
	a, _ := newTestApp(t, "find 10\ncheck 55\nquit\n")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d", code, apperrors.ExitSuccess)
	}
	for _, want := range []string{"F(10) = 55", "55 is a Fibonacci number", "Goodbye!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out.String(), "\033[") {
		t.Error("colors should be disabled when output is not a terminal")
	}
}

func TestRun_REPLCancelled(t *testing.T) {
	a, _ := newTestApp(t, "seq 5\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := a.Run(ctx, io.Discard); code != apperrors.ExitErrorCanceled {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestRun_Demo(t *testing.T) {
	a, _ := newTestApp(t, "", "-mode", "demo", "-demo-count", "20")
	if a.Config.Mode != config.ModeDemo {
		t.Fatalf("Mode = %q", a.Config.Mode)
	}
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if !strings.Contains(out.String(), "DEMO COMPLETE") {
		t.Error("demo should run to completion")
	}
	if strings.Contains(out.String(), "fib> ") {
		t.Error("REPL should not start without -interactive")
	}
}

func TestRun_DemoInteractive(t *testing.T) {
	a, _ := newTestApp(t, "seq 3\n", "-mode", "demo", "-demo-count", "20", "-i")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	got := out.String()
	demoEnd := strings.Index(got, "DEMO COMPLETE")
	replOut := strings.Index(got, "First 3 Fibonacci numbers: [0, 1, 1]")
	if demoEnd < 0 || replOut < demoEnd {
		t.Errorf("REPL output should follow the demo:\n%s", got)
	}
}

func TestRun_Completion(t *testing.T) {
	a, _ := newTestApp(t, "", "-completion", "zsh")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if !strings.Contains(out.String(), "#compdef fibtoolkit") {
		t.Errorf("unexpected completion output: %s", out.String())
	}
}

func TestRun_CompletionUnsupported(t *testing.T) {
	a, errBuf := newTestApp(t, "", "-completion", "tcsh")
	if code := a.Run(context.Background(), io.Discard); code != apperrors.ExitErrorConfig {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errBuf.String(), "unsupported shell") {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

func TestRun_DebugLogging(t *testing.T) {
	a, errBuf := newTestApp(t, "find 5\n", "-log-level", "debug")
	if code := a.Run(context.Background(), io.Discard); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	logs := errBuf.String()
	if !strings.Contains(logs, "starting") || !strings.Contains(logs, "command executed") {
		t.Errorf("debug logs missing expected entries:\n%s", logs)
	}
}

func TestRun_ConsoleLogging(t *testing.T) {
	a, errBuf := newTestApp(t, "", "-log-level", "info", "-log-format", "console")
	if code := a.Run(context.Background(), io.Discard); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	logs := errBuf.String()
	if !strings.Contains(logs, "INF starting") || strings.Contains(logs, `"message"`) {
		t.Errorf("expected console-formatted logs, got:\n%s", logs)
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"-version"}, true},
		{[]string{"--version"}, true},
		{[]string{"-mode", "demo", "-V"}, true},
		{[]string{"-mode", "demo"}, false},
		{[]string{"--", "-V"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.HasPrefix(out.String(), "fibtoolkit "+Version) {
		t.Errorf("PrintVersion() = %q", out.String())
	}
}
