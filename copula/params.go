// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"
)

// Params are the parameters of an Archimedean copula.
//
// Params is a value type: it is produced by Fit or by the caller and
// is never modified by this package.
type Params struct {
	// Theta is the dependence parameter θ.
	Theta float64

	// D is the number of variables, d >= 2.
	D int
}

// ParamsFromTuple returns the Params for the ordered tuple (θ, d).
func ParamsFromTuple(tuple []float64) (Params, error) {
	if len(tuple) != 2 {
		return Params{}, &ValidationError{"params", fmt.Sprintf("must be a (theta, d) tuple of length 2, got length %d", len(tuple))}
	}
	d := tuple[1]
	if d != math.Trunc(d) || math.IsInf(d, 0) {
		return Params{}, &ValidationError{"d", fmt.Sprintf("d (dimensions parameter) must be an integer, got %v", d)}
	}
	return Params{Theta: tuple[0], D: int(d)}, nil
}

// Tuple returns p as the ordered tuple (θ, d).
func (p Params) Tuple() []float64 {
	return []float64{p.Theta, float64(p.D)}
}

// Map returns p keyed by parameter name.
func (p Params) Map() map[string]float64 {
	return map[string]float64{"theta": p.Theta, "d": float64(p.D)}
}

// Len returns the number of parameters in p.
func (p Params) Len() int {
	return 2
}

func (p Params) String() string {
	return fmt.Sprintf("(theta=%g, d=%d)", p.Theta, p.D)
}
