package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global *zap.Logger
	once   sync.Once
)

// Init builds the process-wide logger. JSON output by default,
// human-readable console output when dev is true.
func Init(level string, dev bool) {
	once.Do(func() {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			lvl = zapcore.InfoLevel
		}

		var encoder zapcore.Encoder
		if dev {
			cfg := zap.NewDevelopmentEncoderConfig()
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoder = zapcore.NewConsoleEncoder(cfg)
		} else {
			cfg := zap.NewProductionEncoderConfig()
			cfg.TimeKey = "timestamp"
			cfg.EncodeTime = zapcore.ISO8601TimeEncoder
			encoder = zapcore.NewJSONEncoder(cfg)
		}

		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), lvl)
		global = zap.New(core, zap.AddCaller())
	})
}

// L returns the global logger, initializing it with defaults if needed.
func L() *zap.Logger {
	if global == nil {
		Init("info", false)
	}
	return global
}

// S returns the sugared form of the global logger.
func S() *zap.SugaredLogger {
	return L().Sugar()
}

// Sync flushes buffered entries. Safe to call on shutdown.
func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}
