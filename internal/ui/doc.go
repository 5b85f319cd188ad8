// Package ui holds the color themes shared by the line explorer and the
// full-screen TUI: ANSI escape sequences for the REPL and demo, and
// lipgloss palettes for the TUI. The active theme is process-wide and is
// chosen once at startup from -theme, -no-color and NO_COLOR.
package ui
