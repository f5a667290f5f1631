// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// StableDist is an α-stable distribution S(α, β, γ, δ; 1) in
// Nolan's "1" parameterization, whose characteristic function for
// α ≠ 1 is
//
//	E[exp(itX)] = exp(-γ^α |t|^α (1 - iβ sign(t) tan(πα/2)) + iδt)
//
// With β = 1 and α < 1 the distribution is supported on [δ, ∞). For
// γ = cos(πα/2)^(1/α) and δ = 0 its Laplace transform is exp(-t^α),
// which is the mixing law of the Gumbel copula.
type StableDist struct {
	// Alpha is the stability index, 0 < Alpha <= 2.
	Alpha float64

	// Beta is the skewness, -1 <= Beta <= 1.
	Beta float64

	// Scale is γ > 0.
	Scale float64

	// Loc is δ.
	Loc float64

	// Src is the source of randomness. If nil, gonum's global
	// source is used.
	Src rand.Source
}

// Rand returns a random variate using the method of Chambers,
// Mallows and Stuck (1976), in the form given by Weron (1996).
func (d StableDist) Rand() float64 {
	a, b := d.Alpha, d.Beta
	if !(0 < a && a <= 2) || !(-1 <= b && b <= 1) || !(d.Scale > 0) {
		panic(fmt.Sprintf("invalid stable distribution %+v", d))
	}

	v := distuv.Uniform{Min: -math.Pi / 2, Max: math.Pi / 2, Src: d.Src}.Rand()
	w := distuv.Exponential{Rate: 1, Src: d.Src}.Rand()

	if a == 1 {
		h := math.Pi/2 + b*v
		x := 2 / math.Pi * (h*math.Tan(v) - b*math.Log(math.Pi/2*w*math.Cos(v)/h))
		return d.Scale*x + 2/math.Pi*b*d.Scale*math.Log(d.Scale) + d.Loc
	}

	zeta := -b * math.Tan(math.Pi*a/2)
	xi := math.Atan(-zeta) / a
	s := math.Pow(1+zeta*zeta, 1/(2*a))
	x := s * math.Sin(a*(v+xi)) / math.Pow(math.Cos(v), 1/a) *
		math.Pow(math.Cos(v-a*(v+xi))/w, (1-a)/a)
	return d.Scale*x + d.Loc
}

// PositiveStable returns the totally skewed stable distribution with
// Laplace transform exp(-t^alpha), for 0 < alpha < 1.
func PositiveStable(alpha float64, src rand.Source) StableDist {
	return StableDist{
		Alpha: alpha,
		Beta:  1,
		Scale: math.Pow(math.Cos(math.Pi*alpha/2), 1/alpha),
		Src:   src,
	}
}
