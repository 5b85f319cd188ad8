package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// decode parses the single JSON line in buf.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log output is not one JSON object: %v\n%s", err, buf.String())
	}
	return entry
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	testErr := errors.New("boom")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("command", "seq"), "command", "seq"},
		{"Int", Int("count", 42), "count", 42},
		{"Bool", Bool("failed", true), "failed", true},
		{"Duration", Duration("took", time.Second), "took", time.Second},
		{"Err", Err(testErr), "error", testErr},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key || tt.field.Value != tt.value {
				t.Errorf("%s() = %+v, want {%s %v}", tt.name, tt.field, tt.key, tt.value)
			}
		})
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, "dispatcher", Options{Level: "debug"}).Debug("command executed",
		String("command", "find"),
		Int("index", 10),
		Bool("failed", false),
	)

	entry := decode(t, &buf)
	want := map[string]any{
		"level":     "debug",
		"component": "dispatcher",
		"message":   "command executed",
		"command":   "find",
		"index":     float64(10),
		"failed":    false,
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("entry[%q] = %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry should carry a timestamp")
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantError bool
	}{
		{"debug", true, true, true},
		{"INFO", false, true, true},
		{"warn", false, false, true},
		{"", false, false, true},
		{"chatty", false, false, true},
		{"error", false, false, true},
		{"disabled", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(&buf, "test", Options{Level: tt.level})
			for _, c := range []struct {
				log  func(string, ...Field)
				msg  string
				want bool
			}{
				{l.Debug, "dbg", tt.wantDebug},
				{l.Info, "inf", tt.wantInfo},
				{func(msg string, f ...Field) { l.Error(msg, nil, f...) }, "err", tt.wantError},
			} {
				c.log(c.msg)
				if got := strings.Contains(buf.String(), c.msg); got != c.want {
					t.Errorf("level %q: %s logged = %v, want %v", tt.level, c.msg, got, c.want)
				}
			}
		})
	}
}

func TestNew_Console(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, "app", Options{Level: "info", Format: FormatConsole}).Info("starting", String("mode", "repl"))

	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("console format should not emit JSON: %s", out)
	}
	for _, want := range []string{"INF", "starting", "mode=repl", "component=app"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q: %s", want, out)
		}
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, "app", Options{}).Error("session failed", errors.New("read error"), Duration("uptime", 2*time.Millisecond))

	entry := decode(t, &buf)
	if entry["level"] != "error" || entry["error"] != "read error" {
		t.Errorf("unexpected entry %v", entry)
	}
	// zerolog renders durations in milliseconds by default.
	if entry["uptime"] != float64(2) {
		t.Errorf("uptime = %v, want 2", entry["uptime"])
	}
}

func TestZerologAdapter_With(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, "app", Options{Level: "info"}).With(String("session", "abc")).Info("hello")

	if entry := decode(t, &buf); entry["session"] != "abc" {
		t.Errorf("child logger should carry session field, got %v", entry)
	}
}

func TestApplyFields_FallbackTypes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	applyFields(zl.Info(), []Field{
		{Key: "list", Value: []int{1, 2}},
		{Key: "cause", Value: errors.New("nope")},
	}).Msg("x")

	entry := decode(t, &buf)
	if entry["cause"] != "nope" {
		t.Errorf("error field = %v", entry["cause"])
	}
	if list, ok := entry["list"].([]any); !ok || len(list) != 2 {
		t.Errorf("list field = %v", entry["list"])
	}
}

func TestNop(t *testing.T) {
	t.Parallel()
	var l Logger = Nop()
	l.Error("ignored", errors.New("x"))
}
