// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Error is the error class for logger configuration failures.
var Error = errs.Class("logging")

// Encodings.
const (
	Console = "console"
	JSON    = "json"
)

// Config selects the level, encoding and destination of a logger.
type Config struct {
	Level  string
	Format string
	Writer io.Writer
}

// New creates a zap logger around a new zap.Core. Empty fields select the
// info level, the console encoding and os.Stderr.
func New(c Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		err := level.UnmarshalText([]byte(strings.ToLower(c.Level)))
		if err != nil {
			return nil, Error.New("invalid level %q", c.Level)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch c.Format {
	case "", Console:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case JSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, Error.New("invalid format %q", c.Format)
	}

	if c.Writer == nil {
		c.Writer = os.Stderr
	}

	var sw zapcore.WriteSyncer
	switch t := c.Writer.(type) {
	case *os.File:
		sw = zapcore.Lock(t)
	case zapcore.WriteSyncer:
		sw = t
	default:
		sw = zapcore.AddSync(c.Writer)
	}

	return zap.New(
		zapcore.NewCore(encoder, sw, level),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}
