// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParams     = errors.New("invalid copula parameters")
	ErrFit               = errors.New("copula fit failed")
	ErrNotImplemented    = errors.New("not implemented")
	ErrUnknownMethod     = errors.New("unknown fit method")
	ErrUnknownFamily     = errors.New("unknown copula family")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrSampleSize        = errors.New("invalid sample size")
	ErrDomain            = errors.New("observations must lie strictly between 0 and 1")
)

// A ValidationError reports a malformed parameter. It wraps
// ErrInvalidParams.
type ValidationError struct {
	// Param is the name of the offending parameter.
	Param string

	// Msg describes the required range.
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Param + ": " + e.Msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParams
}

// A FitError reports why a fit could not produce valid parameters. It
// wraps both ErrFit and the underlying cause.
type FitError struct {
	Family string
	Method Method
	Err    error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("cannot fit %s copula using %v: %v", e.Family, e.Method, e.Err)
}

func (e *FitError) Unwrap() []error {
	return []error{ErrFit, e.Err}
}

func notImplemented(family, op, why string) error {
	return fmt.Errorf("%s %s: %w: %s", family, op, ErrNotImplemented, why)
}
