package logging

import "io"

// Output formats understood by NewFromConfig.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// NewFromConfig picks a backend by format: "text" (the default) uses slog,
// "json" and "console" use zerolog.
func NewFromConfig(format, level string, w io.Writer) Logger {
	switch format {
	case FormatJSON:
		return NewZerolog(level, w, false)
	case FormatConsole:
		return NewZerolog(level, w, true)
	default:
		return New(level, w)
	}
}
