package logger

import (
	"fmt"
	"os"

	"quiz-forge/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "quiz-forge"

var log = zap.NewNop()

// Initialize replaces the global logger. Production uses the JSON encoder,
// everything else the console encoder. An empty level means info.
func Initialize(loggerCfg config.LoggerConfig) error {
	level := zapcore.InfoLevel
	if loggerCfg.Level != "" {
		parsed, err := zapcore.ParseLevel(loggerCfg.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", loggerCfg.Level, err)
		}
		level = parsed
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(encCfg)
	if loggerCfg.Env == "production" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	log = zap.New(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", serviceName)),
	)
	return nil
}

// Get returns the global logger. Before Initialize it discards everything.
func Get() *zap.Logger {
	return log
}

func Sync() error {
	return log.Sync()
}
