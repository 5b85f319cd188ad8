package format

import (
	"math"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ns"},
		{-time.Second, "0ns"},
		{500 * time.Nanosecond, "500ns"},
		{1999 * time.Nanosecond, "1\u00b5s"},
		{250 * time.Microsecond, "250\u00b5s"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
		{1234567891 * time.Nanosecond, "1.235s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"0", "0"},
		{"55", "55"},
		{"999", "999"},
		{"6765", "6,765"},
		{"75025", "75,025"},
		{"354224848179261915075", "354,224,848,179,261,915,075"},
		{"-1234567", "-1,234,567"},
		{"12a4", "12a4"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatNumberString(tt.in); got != tt.want {
			t.Errorf("FormatNumberString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFloats(t *testing.T) {
	t.Parallel()
	if got := FormatFixed(1.6180339887498949, 8); got != "1.61803399" {
		t.Errorf("FormatFixed = %q", got)
	}
	if got := FormatScientific(8.237676933e-06); got != "8.24e-06" {
		t.Errorf("FormatScientific = %q", got)
	}
	if FormatFixed(math.NaN(), 3) != "n/a" || FormatScientific(math.NaN()) != "n/a" {
		t.Error("NaN should render as n/a")
	}
}

func TestFormatList(t *testing.T) {
	t.Parallel()
	if got := FormatList([]string{"0", "1", "1"}); got != "[0, 1, 1]" {
		t.Errorf("FormatList = %q", got)
	}
	if got := FormatList(nil); got != "[]" {
		t.Errorf("FormatList(nil) = %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
