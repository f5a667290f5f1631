// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats is a grab bag of statistical routines used by the copula
// engine: rank statistics, special functions, root finding, and
// samplers gonum does not provide.
package stats // import "github.com/aclements/go-copula/stats"

import (
	"errors"
	"math"
)

var nan = math.NaN()

var (
	ErrSampleSize   = errors.New("sample is too small")
	ErrSamplesEqual = errors.New("all samples are equal")

	// ErrNoBracket is returned when a root could not be bracketed
	// within the allowed number of expansions.
	ErrNoBracket = errors.New("root not bracketed")

	// ErrNoConvergence is returned when a root finder exhausts its
	// iteration budget.
	ErrNoConvergence = errors.New("root finder did not converge")
)
