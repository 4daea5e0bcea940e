package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogger builds a logger writing to stdout, installs it as the global zap logger
// and returns it with its sugared variant.
func SetupLogger(params Parameters) (*zap.Logger, *zap.SugaredLogger) {
	logger := NewLogger(params.Type, params.Level, zapcore.Lock(os.Stdout))
	zap.ReplaceGlobals(logger)
	return logger, logger.Sugar()
}

// NewLogger creates a logger of the given type and level on top of w.
func NewLogger(loggerType LoggerType, level zapcore.Level, w zapcore.WriteSyncer) *zap.Logger {
	al := zap.NewAtomicLevelAt(level)
	ec := zap.NewDevelopmentEncoderConfig()
	var enc zapcore.Encoder
	switch loggerType {
	case LoggerJSON:
		ec = zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	default:
		enc = zapcore.NewConsoleEncoder(ec)
	}
	return zap.New(zapcore.NewCore(enc, w, al))
}
