// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"math"

	"github.com/aclements/go-copula/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Clayton is the Clayton family, with generator
//
//	φ(u) = (u^-θ - 1)/θ
//
// θ ∈ [-1, ∞) \ {0} for d = 2 and θ ∈ (0, ∞) for d > 2.
type Clayton struct{}

func (Clayton) Name() string {
	return "clayton"
}

func (Clayton) Generator(u, theta float64) float64 {
	return (math.Pow(u, -theta) - 1) / theta
}

// GeneratorInverse is the pseudo-inverse max(θt+1, 0)^(-1/θ), which
// is zero past the end of the support when θ < 0.
func (Clayton) GeneratorInverse(t, theta float64) float64 {
	base := theta*t + 1
	if theta < 0 && base < 0 {
		return 0
	}
	return math.Pow(base, -1/theta)
}

func (Clayton) Bounds(d int) Bounds {
	lo := 0.0
	if d == 2 {
		lo = -1
	}
	return Bounds{Lo: lo, Hi: inf, Excluded: []float64{0}}
}

func (Clayton) FitBounds(d int) (float64, float64) {
	if d == 2 {
		return -1, 100
	}
	return 0, 100
}

func (Clayton) MaxDim() int {
	return 0
}

func (Clayton) NumParams() int {
	return 2
}

func (Clayton) InverseKendallTau(tau float64) (float64, error) {
	return 2 * tau / (1 - tau), nil
}

// LogPDF uses the closed form
//
//	Σₖ ln(1+kθ) - (1/θ+d) ln(θS+1) + (1/θ+1) Σᵢ ln(θφ(xᵢ)+1)
//
// where k runs over 0…d-1.
func (Clayton) LogPDF(t *Terms, p Params) ([]float64, error) {
	theta, d := p.Theta, p.D
	var logC float64
	for k := 0; k < d; k++ {
		logC += math.Log1p(float64(k) * theta)
	}

	out := make([]float64, len(t.S))
	for i, s := range t.S {
		if theta*s+1 <= 0 {
			// Outside the support when θ < 0.
			out[i] = -inf
			continue
		}
		var logG float64
		for j := 0; j < d; j++ {
			logG += math.Log(theta*t.G.At(i, j) + 1)
		}
		out[i] = logC - (1/theta+float64(d))*math.Log(theta*s+1) + (1/theta+1)*logG
	}
	return out, nil
}

// The Clayton mixing law is Gamma(1/θ, 1), whose Laplace transform is
// (1+t)^(-1/θ).
func (Clayton) mixing(theta float64, src rand.Source) (stats.Dist, error) {
	if theta <= 0 {
		return nil, notImplemented("clayton", "rand", "cannot generate random variables when theta is not positive")
	}
	return distuv.Gamma{Alpha: 1 / theta, Beta: 1, Src: src}, nil
}

func (Clayton) laplace(t, theta float64) float64 {
	return math.Pow(1+t, -1/theta)
}
