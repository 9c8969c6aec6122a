// Package logger builds the zap logger shared by the server and CLI.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured field keys used across packages.
const (
	FieldResumeID        = "resume_id"
	FieldBatchID         = "batch_id"
	FieldGrammarProvider = "grammar_provider"
	FieldModel           = "ai_model"
)

// New builds a logger writing to stdout. json selects the JSON encoder over
// the console one; debug lowers the level to Debug.
func New(json bool, debug bool) (*zap.Logger, error) {
	return NewTo("stdout", json, debug)
}

// NewTo is New with a custom output path such as "stderr".
func NewTo(output string, json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,

			NameKey: "logger",
		},
	}
	return cfg.Build()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// WithResume attaches the résumé ID to the logger when it is set.
func WithResume(l *zap.Logger, resumeID string) *zap.Logger {
	l = OrNop(l)
	if id := strings.TrimSpace(resumeID); id != "" {
		return l.With(zap.String(FieldResumeID, id))
	}
	return l
}

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
