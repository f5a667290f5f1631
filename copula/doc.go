// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package copula implements Archimedean copulas.
//
// An Archimedean copula is determined by a generator φ, a strictly
// decreasing convex function on (0, 1] with φ(1) = 0:
//
//	C(u₁, …, u_d) = φ⁻¹(φ(u₁) + … + φ(u_d))
//
// Each generator family (Clayton, Gumbel, Frank) implements Family.
// A Copula wraps a Family and provides parameter validation, the
// cumulative distribution function, the density, random sampling and
// fitting on top of it.
//
// Observations are n×d matrices on the copula scale, that is, with
// every entry in (0, 1). Raw data can be mapped onto this scale with
// stats.PseudoObservations.
//
// Parameters are (θ, d) pairs held in a Params value. Evaluation and
// sampling validate their parameters before doing any work and return
// a *ValidationError if they are malformed. Numerical degeneracies,
// such as the logarithm of a non-positive number, are not errors:
// they propagate as NaN in the returned slices.
package copula // import "github.com/aclements/go-copula/copula"
