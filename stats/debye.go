// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// debyePoints is the number of Gauss-Legendre nodes used to integrate
// the Debye kernel.
const debyePoints = 64

// Debye returns the Debye function of order n,
//
//	Dₙ(x) = n/xⁿ ∫₀ˣ tⁿ/(eᵗ-1) dt
//
// Dₙ(0) = 1. For negative x it uses the reflection
// Dₙ(-x) = Dₙ(x) + nx/(n+1).
func Debye(n int, x float64) float64 {
	if n < 1 {
		panic("Debye order must be >= 1")
	}
	switch {
	case math.IsNaN(x):
		return nan
	case x == 0:
		return 1
	case x < 0:
		return Debye(n, -x) - float64(n)*x/float64(n+1)
	case math.IsInf(x, 1):
		return 0
	}

	fn := float64(n)
	kernel := func(t float64) float64 {
		if t == 0 {
			if n == 1 {
				return 1
			}
			return 0
		}
		return math.Pow(t, fn) / math.Expm1(t)
	}

	// The kernel decays like tⁿe⁻ᵗ, so beyond cutoff its
	// contribution is below float64 resolution.
	cutoff := 60 + 4*fn
	integral := quad.Fixed(kernel, 0, math.Min(x, cutoff), debyePoints, nil, 0)
	return fn * integral / math.Pow(x, fn)
}
