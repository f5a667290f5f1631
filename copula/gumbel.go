// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"math"

	"github.com/aclements/go-copula/stats"
	"golang.org/x/exp/rand"
)

// Gumbel is the Gumbel family, with generator
//
//	φ(u) = (-ln u)^θ
//
// θ ∈ [1, ∞). θ = 1 is the independence copula.
type Gumbel struct{}

func (Gumbel) Name() string {
	return "gumbel"
}

func (Gumbel) Generator(u, theta float64) float64 {
	return math.Pow(-math.Log(u), theta)
}

func (Gumbel) GeneratorInverse(t, theta float64) float64 {
	return math.Exp(-math.Pow(t, 1/theta))
}

func (Gumbel) Bounds(d int) Bounds {
	return Bounds{Lo: 1, Hi: inf}
}

func (Gumbel) FitBounds(d int) (float64, float64) {
	return 1, 100
}

func (Gumbel) MaxDim() int {
	return 0
}

func (Gumbel) NumParams() int {
	return 2
}

func (Gumbel) InverseKendallTau(tau float64) (float64, error) {
	return 1 / (1 - tau), nil
}

// LogPDF uses
//
//	ln|ψ⁽ᵈ⁾(S)| + d ln θ - Σᵢ [(1/θ-1) ln φ(xᵢ) + ln xᵢ]
//
// where ψ = φ⁻¹.
func (Gumbel) LogPDF(t *Terms, p Params) ([]float64, error) {
	theta, d := p.Theta, p.D
	a := 1 / theta
	dpsi := psiDerivative(t.S, a, d)

	out := make([]float64, len(t.S))
	for i := range out {
		var logG float64
		for j := 0; j < d; j++ {
			logG -= (a-1)*math.Log(t.G.At(i, j)) + math.Log(t.X.At(i, j))
		}
		out[i] = math.Log(math.Abs(dpsi[i])) + float64(d)*math.Log(theta) + logG
	}
	return out, nil
}

// psiDerivative returns the order'th derivative of ψ(t) = exp(-t^a)
// at each t in ts.
//
// With g(t) = a t^(a-1), ψ' = -gψ, so by the Leibniz rule
//
//	ψ⁽ᴷ⁾ = -Σⱼ C(K-1, j) ψ⁽ʲ⁾ g⁽ᴷ⁻¹⁻ʲ⁾,  j = 0…K-1
//
// and g⁽ᵐ⁾(t) = a(a-1)…(a-m) t^(a-1-m). The derivatives are built
// bottom-up in a table so each order is computed once.
func psiDerivative(ts []float64, a float64, order int) []float64 {
	// fall[m] is the falling factorial a(a-1)…(a-m+1).
	fall := make([]float64, order+1)
	fall[0] = 1
	for m := 1; m <= order; m++ {
		fall[m] = fall[m-1] * (a - float64(m) + 1)
	}

	table := make([][]float64, order+1)
	table[0] = make([]float64, len(ts))
	for i, t := range ts {
		table[0][i] = math.Exp(-math.Pow(t, a))
	}

	// binom is row K-1 of Pascal's triangle.
	binom := []float64{1}
	for k := 1; k <= order; k++ {
		dk := make([]float64, len(ts))
		for j := 0; j < k; j++ {
			coef := binom[j] * fall[k-j]
			if coef == 0 {
				continue
			}
			e := a - float64(k-j)
			for i, t := range ts {
				dk[i] -= coef * table[j][i] * math.Pow(t, e)
			}
		}
		table[k] = dk

		next := make([]float64, k+1)
		next[0], next[k] = 1, 1
		for j := 1; j < k; j++ {
			next[j] = binom[j-1] + binom[j]
		}
		binom = next
	}
	return table[order]
}

// The Gumbel mixing law is the positive stable law with Laplace
// transform exp(-t^(1/θ)), which is the generator inverse itself.
func (Gumbel) mixing(theta float64, src rand.Source) (stats.Dist, error) {
	if theta == 1 {
		return stats.DeltaDist{T: 1}, nil
	}
	return stats.PositiveStable(1/theta, src), nil
}

func (g Gumbel) laplace(t, theta float64) float64 {
	return g.GeneratorInverse(t, theta)
}
