package logger

import (
	"keymarket/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin keyval wrapper around zap's sugared logger so the
// usecase layer does not depend on zap directly.
type Logger struct {
	sugar *zap.SugaredLogger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	var (
		zl  *zap.Logger
		err error
	)

	if cfg != nil && cfg.LoggerMode.Prod {
		zc := zap.NewProductionConfig()
		if lvl, perr := zapcore.ParseLevel(cfg.LoggerMode.Level); perr == nil {
			zc.Level = zap.NewAtomicLevelAt(lvl)
		}
		zl, err = zc.Build(zap.AddCallerSkip(1))
	} else {
		zl, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	}
	if err != nil {
		return nil, err
	}

	return &Logger{sugar: zl.Sugar()}, nil
}

func (l Logger) Debug(msg string, keysAndValues ...any) {
	if l.sugar != nil {
		l.sugar.Debugw(msg, keysAndValues...)
	}
}

func (l Logger) Info(msg string, keysAndValues ...any) {
	if l.sugar != nil {
		l.sugar.Infow(msg, keysAndValues...)
	}
}

func (l Logger) Warn(msg string, keysAndValues ...any) {
	if l.sugar != nil {
		l.sugar.Warnw(msg, keysAndValues...)
	}
}

func (l Logger) Error(msg string, keysAndValues ...any) {
	if l.sugar != nil {
		l.sugar.Errorw(msg, keysAndValues...)
	}
}

func (l Logger) Infof(format string, args ...any) {
	if l.sugar != nil {
		l.sugar.Infof(format, args...)
	}
}

func (l Logger) Warnf(format string, args ...any) {
	if l.sugar != nil {
		l.sugar.Warnf(format, args...)
	}
}

func (l Logger) Errorf(format string, args ...any) {
	if l.sugar != nil {
		l.sugar.Errorf(format, args...)
	}
}

func (l Logger) Sync() {
	if l.sugar != nil {
		_ = l.sugar.Sync()
	}
}
