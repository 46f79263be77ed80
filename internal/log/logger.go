// Package log provides structured logging for hue using zap.
package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with hue-specific helpers.
type Logger struct {
	*zap.Logger
}

var (
	// L is the global logger instance. It discards everything until Init runs.
	L    = NewNop()
	once sync.Once
)

// Init initializes the global logger.
// Safe to call multiple times; only the first call takes effect.
func Init(debug bool) {
	once.Do(func() {
		L = New(debug)
	})
}

// New creates a new Logger instance writing to stderr.
func New(debug bool) *Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		// Fallback to no-op if config fails
		logger = zap.NewNop()
	}

	return &Logger{Logger: logger}
}

// NewNop creates a no-op logger for testing.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// WithRun returns a logger tagging every entry with a run ID.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With(zap.String("run", id))}
}

// Loaded logs the size of the tables a run is using.
func (l *Logger) Loaded(source string, terms, transitions int) {
	l.Debug("tables loaded",
		zap.String("src", source),
		zap.Int("terms", terms),
		zap.Int("transitions", transitions),
	)
}

// Tokenized logs the token count for an input text.
func (l *Logger) Tokenized(textBytes, tokens int, scanner string) {
	l.Debug("tokenized",
		zap.Int("bytes", textBytes),
		zap.Int("tokens", tokens),
		zap.String("scanner", scanner),
	)
}

// Solved logs an optimizer result. score is nil when the variant reports none.
func (l *Logger) Solved(variant string, tokens int, score *int) {
	fields := []zap.Field{
		zap.String("variant", variant),
		zap.Int("tokens", tokens),
	}
	if score != nil {
		fields = append(fields, zap.Int("score", *score))
	}
	l.Debug("solved", fields...)
}

// Field helpers for common patterns.

// Path creates a file path field.
func Path(p string) zap.Field {
	return zap.String("path", p)
}

// Lexicon creates a lexicon name field.
func Lexicon(name string) zap.Field {
	return zap.String("lexicon", name)
}
