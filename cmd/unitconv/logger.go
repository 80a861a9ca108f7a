package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes JSON warnings to w, or human-readable debug output when
// verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	level := zapcore.WarnLevel
	encoder := zapcore.NewJSONEncoder(encCfg)

	if verbose {
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zapcore.DebugLevel
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	return zap.New(core).Named("unitconv")
}
