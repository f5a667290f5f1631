// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// MaxBracketExpansions is the number of times BracketIncreasing will
// double each side of its interval before giving up.
const MaxBracketExpansions = 100

// BracketIncreasing expands [low, high] until f(low) <= 0 <= f(high),
// where f is non-decreasing and low < 0 < high. Each step doubles the
// offending end point. It returns ErrNoBracket if either side cannot
// be bracketed within MaxBracketExpansions doublings.
func BracketIncreasing(f func(float64) float64, low, high float64) (float64, float64, error) {
	if !(low < 0 && 0 < high) {
		panic("BracketIncreasing requires low < 0 < high")
	}
	for i := 0; f(low) > 0; i++ {
		if i == MaxBracketExpansions {
			return nan, nan, ErrNoBracket
		}
		low, high = 2*low, low
	}
	// f(low) <= 0. If high moved, f(high) > 0 already.
	for i := 0; f(high) < 0; i++ {
		if i == MaxBracketExpansions {
			return nan, nan, ErrNoBracket
		}
		low, high = high, 2*high
	}
	return low, high, nil
}

// Brent finds a root of f in the interval [a, b] using Brent's
// method. f(a) and f(b) must have opposite signs, otherwise Brent
// returns ErrNoBracket. The root is located to within
// xtol + 4ε|x|. If the root is not found within maxIter iterations,
// Brent returns the current best estimate and ErrNoConvergence.
//
// Brent, R. P. (1973) Algorithms for Minimization Without
// Derivatives, chapter 4.
func Brent(f func(float64) float64, a, b, xtol float64, maxIter int) (float64, error) {
	const rtol = 4 * 2.220446049250313e-16

	xpre, xcur := a, b
	fpre, fcur := f(a), f(b)
	if math.IsNaN(fpre) || math.IsNaN(fcur) || fpre*fcur > 0 {
		return nan, ErrNoBracket
	}
	if fpre == 0 {
		return xpre, nil
	}
	if fcur == 0 {
		return xcur, nil
	}

	// xblk is the contrapoint: f(xblk) and f(xcur) have opposite
	// signs, so the root always lies between them.
	var xblk, fblk, spre, scur float64
	for i := 0; i < maxIter; i++ {
		if fpre != 0 && fcur != 0 && math.Signbit(fpre) != math.Signbit(fcur) {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		delta := (xtol + rtol*math.Abs(xcur)) / 2
		sbis := (xblk - xcur) / 2
		if fcur == 0 || math.Abs(sbis) < delta {
			return xcur, nil
		}

		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// Secant step.
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// Inverse quadratic interpolation.
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-delta) {
				spre, scur = scur, stry
			} else {
				// Interpolation is converging too slowly.
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		if math.Abs(scur) > delta {
			xcur += scur
		} else if sbis > 0 {
			xcur += delta
		} else {
			xcur -= delta
		}
		fcur = f(xcur)
	}
	return xcur, ErrNoConvergence
}
