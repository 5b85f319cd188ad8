package format

import (
	"fmt"
	"math"
	"strings"
)

// FormatNumberString inserts thousands separators into a base-10 integer
// string. A leading minus sign is preserved; anything that is not a plain
// run of digits after the sign is returned unchanged.
//
// Example:
//
//	FormatNumberString("6765")    // "6,765"
//	FormatNumberString("-1234567") // "-1,234,567"
func FormatNumberString(s string) string {
	sign := ""
	digits := s
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(digits)/3)
	b.WriteString(sign)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatFixed renders f with the given number of decimals, or "n/a" for NaN.
func FormatFixed(f float64, decimals int) string {
	if math.IsNaN(f) {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", decimals, f)
}

// FormatScientific renders f as a two-decimal exponent form (e.g. "8.24e-06"),
// or "n/a" for NaN.
func FormatScientific(f float64) string {
	if math.IsNaN(f) {
		return "n/a"
	}
	return fmt.Sprintf("%.2e", f)
}

// FormatList renders values as a bracketed, comma-separated list.
func FormatList(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}

// FormatBytes renders a byte count with binary units, e.g. "1.5 KiB".
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
