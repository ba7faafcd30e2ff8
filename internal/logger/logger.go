package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON logger on stdout. LOGGING_LEVEL=DEVELOPMENT enables debug output.
func New(level string) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var core zapcore.Core
	switch level {
	case "DEVELOPMENT":
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stdout), zap.DebugLevel)
	default:
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stdout), zap.InfoLevel)
	}
	return zap.New(core, zap.AddCaller())
}

// Init builds the logger and installs it as the zap global.
func Init(level string) *zap.Logger {
	logger := New(level)
	zap.ReplaceGlobals(logger)
	return logger
}
