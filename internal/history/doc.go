// Package history persists finished conversions in a local SQLite database
// so earlier transliterations can be recalled from the CLI and the GUI.
// Recording is best-effort; a history failure never aborts a conversion.
package history
