package main

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a development-style console logger writing to w.
// logr verbosity V(n) maps to zap level -n, so "debug" enables V(1).
func newLogger(w io.Writer, level string) (logr.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Logger{}, errors.Wrapf(err, "parsing log level %q", level)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)

	return zapr.NewLogger(zap.New(core)), nil
}
