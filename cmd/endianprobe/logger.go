package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/moolekkari/endianprobe/common"
)

// zapLogger adapts a zap.SugaredLogger to common.Logger. Notice maps to info
// and trace to debug, zap having no equivalent levels.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *zapLogger) Error(format string, args ...interface{})   { l.sugar.Errorf(format, args...) }
func (l *zapLogger) Warning(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }
func (l *zapLogger) Notice(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *zapLogger) Info(format string, args ...interface{})    { l.sugar.Infof(format, args...) }
func (l *zapLogger) Debug(format string, args ...interface{})   { l.sugar.Debugf(format, args...) }
func (l *zapLogger) Trace(format string, args ...interface{})   { l.sugar.Debugf(format, args...) }

func (l *zapLogger) IsLogLevel(level common.LogLevel) bool {
	return l.sugar.Desugar().Core().Enabled(zapLevel(level))
}

func zapLevel(level common.LogLevel) zapcore.Level {
	switch {
	case level <= common.LogLevelError:
		return zapcore.ErrorLevel
	case level == common.LogLevelWarning:
		return zapcore.WarnLevel
	case level <= common.LogLevelInfo:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// buildLogger returns a console logger on stderr. Standard output carries only
// the probe report.
func buildLogger(level common.LogLevel) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel(level))
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
