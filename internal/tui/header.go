package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version and session time.
type HeaderModel struct {
	startTime time.Time
	now       time.Time
	version   string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	now := time.Now()
	return HeaderModel{
		startTime: now,
		now:       now,
		version:   version,
	}
}

// Tick advances the session clock.
func (h *HeaderModel) Tick(t time.Time) {
	h.now = t
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Fibonacci Explorer"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)
	pipe := versionStyle.Render(" | ")
	session := elapsedStyle.Render(fmt.Sprintf("Session: %s", h.now.Sub(h.startTime).Truncate(time.Second)))

	leftPart := title + pipe + session
	gap := max(h.width-2-lipgloss.Width(leftPart), 0)

	return headerStyle.Width(h.width).Render(leftPart + spaces(gap))
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
