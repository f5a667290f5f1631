// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"

	"github.com/aclements/go-copula/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Frank is the bivariate Frank family, with generator
//
//	φ(u) = -ln((e^(-θu) - 1)/(e^(-θ) - 1))
//
// θ ∈ (-∞, ∞) \ {0}. Only d = 2 is supported.
type Frank struct{}

func (Frank) Name() string {
	return "frank"
}

// Generator evaluates φ through r = (e^(-θu)-1)/(e^(-θ)-1) when r is
// small and through q = 1-r otherwise. Both are written so that
// neither cancels nor overflows for either sign of θ.
func (Frank) Generator(u, theta float64) float64 {
	var r, q float64
	if theta > 0 {
		r = math.Expm1(-theta*u) / math.Expm1(-theta)
		q = math.Exp(-theta*u) * math.Expm1(-theta*(1-u)) / math.Expm1(-theta)
	} else {
		r = math.Exp(theta*(1-u)) * math.Expm1(theta*u) / math.Expm1(theta)
		q = math.Expm1(theta*(1-u)) / math.Expm1(theta)
	}
	if r < 0.5 {
		return -math.Log(r)
	}
	return -math.Log1p(-q)
}

// GeneratorInverse evaluates -ln(1 + e^(-t)(e^(-θ)-1))/θ. For θ > 0
// the argument is rewritten as (1-e^(-t)) + e^(-t-θ) once it is far
// from 1; for θ < 0 it is evaluated in log space.
func (Frank) GeneratorInverse(t, theta float64) float64 {
	if theta > 0 {
		x := math.Exp(-t) * math.Expm1(-theta)
		if x > -0.5 {
			return -math.Log1p(x) / theta
		}
		return -math.Log(-math.Expm1(-t)+math.Exp(-t-theta)) / theta
	}
	return -log1pExp(logAbsExpm1(-theta)-t) / theta
}

// logAbsExpm1 returns ln|e^x - 1|.
func logAbsExpm1(x float64) float64 {
	if x > 0 {
		return x + math.Log(-math.Expm1(-x))
	}
	return math.Log(-math.Expm1(x))
}

// log1pExp returns ln(1 + e^x).
func log1pExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

func (Frank) Bounds(d int) Bounds {
	return Bounds{Lo: -inf, Hi: inf, Excluded: []float64{0}}
}

func (Frank) FitBounds(d int) (float64, float64) {
	return -100, 100
}

func (Frank) MaxDim() int {
	return 2
}

func (Frank) NumParams() int {
	return 1
}

// frankLogDensity returns the log of the Frank density
//
//	θ(1-e^(-θ)) e^(-θ(u+v)) / (e^(-θu)(1-e^(-θv)) + e^(-θv)(1-e^(-θ(1-v))))²
//
// The two terms of the denominator always share a sign, so it is
// summed in log space without cancellation. buf must have length 2.
func frankLogDensity(u, v, theta float64, buf []float64) float64 {
	buf[0] = -theta*u + logAbsExpm1(-theta*v)
	buf[1] = -theta*v + logAbsExpm1(-theta*(1-v))
	logDen := floats.LogSumExp(buf)
	return math.Log(math.Abs(theta)) + logAbsExpm1(-theta) - theta*(u+v) - 2*logDen
}

func (Frank) LogPDF(t *Terms, p Params) ([]float64, error) {
	if p.Theta <= 0 {
		return nil, notImplemented("frank", "logpdf", "the log density is only defined in closed form when theta > 0")
	}
	out := make([]float64, len(t.S))
	buf := make([]float64, 2)
	for i := range out {
		out[i] = frankLogDensity(t.X.At(i, 0), t.X.At(i, 1), p.Theta, buf)
	}
	return out, nil
}

// pdf is defined for both signs of θ.
func (Frank) pdf(t *Terms, p Params) ([]float64, error) {
	out := make([]float64, len(t.S))
	buf := make([]float64, 2)
	for i := range out {
		out[i] = math.Exp(frankLogDensity(t.X.At(i, 0), t.X.At(i, 1), p.Theta, buf))
	}
	return out, nil
}

// rand samples by inverting the conditional distribution of the second
// variable given the first:
//
//	v = -(1/θ) ln((w e^(-θ) + (1-w) e^(-θu)) / (w + (1-w) e^(-θu)))
//
// with both sums taken in log space.
func (Frank) rand(n int, p Params, src rand.Source) (*mat.Dense, error) {
	theta := p.Theta
	unif := distuv.Uniform{Min: 0, Max: 1, Src: src}
	buf := make([]float64, 2)
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		u, w := unif.Rand(), unif.Rand()
		lw, rest := math.Log(w), math.Log1p(-w)-theta*u
		buf[0], buf[1] = lw-theta, rest
		num := floats.LogSumExp(buf)
		buf[0] = lw
		den := floats.LogSumExp(buf)
		// Rounding can step just outside [0, 1].
		v := math.Max(0, math.Min(1, (den-num)/theta))
		out.Set(i, 0, u)
		out.Set(i, 1, v)
	}
	return out, nil
}

// frankTau returns the population Kendall's tau of the Frank copula,
// 1 - 4(1 - D₁(θ))/θ.
func frankTau(theta float64) float64 {
	switch {
	case theta == 0:
		return 0
	case math.Abs(theta) < 1e-6:
		return theta / 9
	}
	return 1 - 4*(1-stats.Debye(1, theta))/theta
}

// InverseKendallTau has no closed form for Frank, so it brackets the
// root of frankTau(θ) - tau starting from [-2, 2] and polishes it
// with Brent's method.
func (Frank) InverseKendallTau(tau float64) (float64, error) {
	if math.IsNaN(tau) || tau <= -1 || tau >= 1 {
		return nan, fmt.Errorf("%w: tau=%v has no finite theta", stats.ErrNoBracket, tau)
	}
	f := func(theta float64) float64 {
		return frankTau(theta) - tau
	}
	lo, hi, err := stats.BracketIncreasing(f, -2, 2)
	if err != nil {
		return nan, err
	}
	return stats.Brent(f, lo, hi, 1e-12, 100)
}
