// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a univariate distribution that can be sampled.
//
// gonum's distuv types (Gamma, Uniform, Exponential, ...) satisfy
// this interface, as do StableDist and DeltaDist.
type Dist interface {
	// Rand returns a random variate from this distribution.
	Rand() float64
}

// DeltaDist is the Dirac delta distribution centered at T.
type DeltaDist struct {
	T float64
}

func (d DeltaDist) Rand() float64 {
	return d.T
}
