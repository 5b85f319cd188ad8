// Package orchestration parses explorer commands and dispatches them to the
// Fibonacci toolkit. It records metrics, tracing spans and debug logs for
// every command, and decouples the toolkit from presentation via the
// ResultPresenter interface shared by the CLI and the TUI.
package orchestration
