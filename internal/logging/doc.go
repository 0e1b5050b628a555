// Package logging assembles the structured slog loggers used by the montage
// CLI.
//
// It owns the console and JSON handlers and centralizes level and output
// plumbing. The console handler renders aligned key=value attributes with an
// optional component prefix; the JSON handler emits ts/level/msg keys. Debug
// level adds source locations to both.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits log lines with the same shape.
package logging
