package logging

import (
	"go.uber.org/zap"

	"github.com/cividesk/braintree-bridge/internal/domain/ports"
)

// zapLogger adapts a zap.Logger to the domain Logger port
type zapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps a zap logger behind the Logger port
func NewZapLogger(l *zap.Logger) ports.Logger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Info(msg string, fields ...ports.Field) {
	z.l.Info(msg, convert(fields)...)
}

func (z *zapLogger) Error(msg string, fields ...ports.Field) {
	z.l.Error(msg, convert(fields)...)
}

func (z *zapLogger) Warn(msg string, fields ...ports.Field) {
	z.l.Warn(msg, convert(fields)...)
}

func (z *zapLogger) Debug(msg string, fields ...ports.Field) {
	z.l.Debug(msg, convert(fields)...)
}

func convert(fields []ports.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}
	return out
}
