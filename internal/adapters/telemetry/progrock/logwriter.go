package progrock

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/attest/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that forwards vertex output and failures to a ports.Logger.
// Lines written by Vertex.Log carry a "[LEVEL] " prefix which selects the logger method;
// debug lines are dropped. A failed vertex is reported as a warning since the caller
// also returns its error. Each line is prefixed with the name of its vertex.
type LogWriter struct {
	logger ports.Logger

	mu     sync.Mutex
	names  map[string]string
	failed map[string]bool
}

// NewLogWriter creates a LogWriter forwarding to logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger: logger,
		names:  make(map[string]string),
		failed: make(map[string]bool),
	}
}

// WriteStatus implements progrock.Writer.
func (w *LogWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		w.names[v.Id] = v.Name
		if v.Completed == nil || w.failed[v.Id] {
			continue
		}
		switch {
		case v.Error != nil:
			w.failed[v.Id] = true
			w.logger.Warn(v.Name + " failed: " + *v.Error)
		case v.Canceled:
			w.failed[v.Id] = true
			w.logger.Warn(v.Name + " canceled")
		}
	}

	for _, l := range update.Logs {
		name := w.names[l.Vertex]
		for line := range bytes.Lines(l.Data) {
			w.forward(name, strings.TrimRight(string(line), "\r\n"))
		}
	}
	return nil
}

func (w *LogWriter) forward(vertex, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	level, msg := splitLevel(line)
	if vertex != "" {
		msg = vertex + ": " + msg
	}

	switch {
	case level < slog.LevelInfo:
	case level < slog.LevelWarn:
		w.logger.Info(msg)
	case level < slog.LevelError:
		w.logger.Warn(msg)
	default:
		w.logger.Error(errors.New(msg))
	}
}

// splitLevel strips a leading "[LEVEL] " tag, defaulting to Info for untagged output.
func splitLevel(line string) (slog.Level, string) {
	rest, ok := strings.CutPrefix(line, "[")
	if !ok {
		return slog.LevelInfo, line
	}
	tag, msg, ok := strings.Cut(rest, "] ")
	if !ok {
		return slog.LevelInfo, line
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(tag)); err != nil {
		return slog.LevelInfo, line
	}
	return level, msg
}

// Close implements progrock.Writer.
func (w *LogWriter) Close() error {
	return nil
}
