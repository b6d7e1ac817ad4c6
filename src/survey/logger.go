package survey

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The whole engine logs through these package helpers so an embedding
// application can redirect or silence output with a single call.

var levelNames = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var baseLogger = func() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = logLevel
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zap.Must(cfg.Build(zap.WithCaller(false))).Sugar()
}()

// SetLogLevel parses and sets the global log level (debug|info|warn|error).
// Unknown names leave the level unchanged.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	logLevel.SetLevel(l)
}

// Public helpers
func Debugf(format string, a ...interface{}) { baseLogger.Debugf(format, a...) }
func Infof(format string, a ...interface{})  { baseLogger.Infof(format, a...) }
func Warnf(format string, a ...interface{})  { baseLogger.Warnf(format, a...) }
func Errorf(format string, a ...interface{}) { baseLogger.Errorf(format, a...) }
