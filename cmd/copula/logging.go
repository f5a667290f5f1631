// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a logr.Logger backed by zap writing to w. logr
// verbosity V(n) maps to zap level -n, so "debug" enables V(1).
func newLogger(level string, w io.Writer) (logr.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	enc := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zapr.NewLogger(zap.New(core)), nil
}

// logProgress reports evaluation progress at debug level.
type logProgress struct {
	log logr.Logger
}

func (p logProgress) Step(op string, done, total int) {
	p.log.V(1).Info("evaluating", "op", op, "column", done, "columns", total)
}
