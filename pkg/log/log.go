package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func init() {
	zap.ReplaceGlobals(zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(config()),
		zapcore.Lock(os.Stdout),
		logLevel,
	)))
}

func config() zapcore.EncoderConfig {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return encoderCfg
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, kv ...interface{}) {
	zap.S().Debugw(msg, kv...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, kv ...interface{}) {
	zap.S().Infow(msg, kv...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, kv ...interface{}) {
	zap.S().Warnw(msg, kv...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, kv ...interface{}) {
	zap.S().Errorw(msg, kv...)
}

// Panic logs a message and then panics.
func Panic(msg string, kv ...interface{}) {
	zap.S().Panicw(msg, kv...)
}

// Fatal logs a message and then calls os.Exit(1).
func Fatal(msg string, kv ...interface{}) {
	zap.S().Fatalw(msg, kv...)
}

// SetLevel sets the log level by name. Accepted values are
// debug, info, warn, error, panic and fatal (case-insensitive).
func SetLevel(level string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(Clean(level))); err != nil {
		return fmt.Errorf("invalid log level string: %v", level)
	}
	switch l {
	case zapcore.DPanicLevel:
		return fmt.Errorf("invalid log level string: %v", level)
	}
	logLevel.SetLevel(l)
	return nil
}

// GetLevel returns the active log level.
func GetLevel() zapcore.Level {
	return logLevel.Level()
}

// Clean normalizes a string for use as a log value.
func Clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
