package domain

import "log/slog"

// LogLevel is the severity of a message recorded on a telemetry vertex.
// It shares slog's scale so vertex logs and the process logger agree on names.
type LogLevel = slog.Level

// Vertex log levels. Debug lines stay on the vertex; the others reach the process logger.
const (
	// LogLevelDebug is diagnostic detail about a single input.
	LogLevelDebug LogLevel = slog.LevelDebug
	// LogLevelInfo reports normal progress, such as how many coordinates an input held.
	LogLevelInfo LogLevel = slog.LevelInfo
	// LogLevelWarn reports a degraded but successful read.
	LogLevelWarn LogLevel = slog.LevelWarn
	// LogLevelError reports a failure attributed to a vertex.
	LogLevelError LogLevel = slog.LevelError
)
