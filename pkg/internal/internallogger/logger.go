// Package internallogger adapts zap to the library's Logger interface. Components
// never import zap directly; they fan structured key/value events out through
// NotifyLoggers and this adapter turns them into zap entries.
package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap configuration before the adapter is built.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter is the zap-backed implementation of types.Logger.
type ZapLoggerAdapter struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	mu          sync.Mutex
	sinks       map[string]zapcore.Core
	cores       []zapcore.Core
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 3

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	atomicLevel := zap.NewAtomicLevelAt(level)
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	defaultCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stdout), atomicLevel)
	cores := []zapcore.Core{defaultCore}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(callerDepth))
	if len(config.InitialFields) > 0 {
		logger = logger.With(fieldsFromMap(config.InitialFields)...)
	}

	return &ZapLoggerAdapter{
		logger:      logger,
		atomicLevel: atomicLevel,
		callerDepth: callerDepth,
		sinks:       make(map[string]zapcore.Core),
		cores:       cores,
	}
}
