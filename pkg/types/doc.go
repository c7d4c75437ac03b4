// Package types defines the menubook domain entities (Course, MenuItem,
// Candidate), the session configuration, and the standard error values
// shared by the store, the CLI, and the TUI.
package types
