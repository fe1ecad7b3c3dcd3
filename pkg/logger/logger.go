package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

var Log = zap.NewNop()

// Init builds the process logger. format "json" selects the production encoder.
func Init(level, format string) {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		Log = zap.NewExample()
		Log.Warn("falling back to example logger", zap.Error(err))
		return
	}
	Log = l
}

// NewTest returns a logger that writes through t.
func NewTest(t testing.TB) *zap.Logger {
	return zaptest.NewLogger(t)
}
