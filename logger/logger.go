package logger

import (
	"strings"

	"github.com/cyphera/momo-disbursement-go/constants"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger for the command line tool. Library packages take an
// injected *zap.Logger instead.
var Log = zap.NewNop()

// Config selects the level and encoding of a logger
type Config struct {
	Level string
	// Stage "prod" selects JSON output; anything else a console encoder
	Stage string
	// NoColor disables level colors on the console encoder
	NoColor bool
}

// Init replaces Log with a logger built from cfg.
func Init(cfg Config) error {
	log, err := New(cfg)
	if err != nil {
		return err
	}
	Log = log
	return nil
}

// New builds a logger writing to stderr so command output on stdout stays parseable.
func New(cfg Config) (*zap.Logger, error) {
	level := ParseLevel(cfg.Level)

	zapConfig := zap.NewDevelopmentConfig()
	if cfg.Stage == constants.ProdEnvironment {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.InitialFields = map[string]interface{}{
			"service": "momo-disbursement",
		}
		zapConfig.DisableStacktrace = level > zapcore.DebugLevel
	} else {
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if cfg.NoColor {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
	}

	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	return zapConfig.Build()
}

// ParseLevel maps LOG_LEVEL values onto zap levels. Unknown values mean info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case constants.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes Log
func Sync() error {
	return Log.Sync()
}
