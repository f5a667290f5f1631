// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/aclements/go-copula/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

var inf = math.Inf(1)
var nan = math.NaN()

// Bounds is the set of valid θ for a family at a given dimension:
// the closed interval [Lo, Hi] minus the singular values in Excluded.
type Bounds struct {
	Lo, Hi   float64
	Excluded []float64
}

// Contains reports whether theta is a valid dependence parameter.
func (b Bounds) Contains(theta float64) bool {
	return b.Lo <= theta && theta <= b.Hi && !slices.Contains(b.Excluded, theta)
}

func (b Bounds) String() string {
	return fmt.Sprintf("%s <= theta <= %s", fmtBound(b.Lo), fmtBound(b.Hi))
}

func fmtBound(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	return fmt.Sprint(x)
}

// Terms holds an observation matrix together with the generator
// evaluated on it. Every closed-form density is built from these.
type Terms struct {
	// X is the n×d observation matrix.
	X mat.Matrix

	// G[i,j] is φ(X[i,j]).
	G *mat.Dense

	// S[i] is the sum of row i of G.
	S []float64
}

// A Family is an Archimedean generator family.
//
// Implementations must be stateless: every method depends only on its
// arguments.
type Family interface {
	// Name returns the lower-case family name.
	Name() string

	// Generator returns φ(u; θ) for u in (0, 1].
	Generator(u, theta float64) float64

	// GeneratorInverse returns φ⁻¹(t; θ) for t >= 0.
	GeneratorInverse(t, theta float64) float64

	// Bounds returns the valid range of θ for d variables.
	Bounds(d int) Bounds

	// FitBounds returns the default optimizer search interval for
	// θ with d variables.
	FitBounds(d int) (lo, hi float64)

	// MaxDim returns the largest supported dimension, or 0 if any
	// d >= 2 is supported.
	MaxDim() int

	// NumParams returns the number of scalar parameters counted by
	// AIC and BIC.
	NumParams() int

	// LogPDF returns the log density at each row of t.X.
	LogPDF(t *Terms, p Params) ([]float64, error)

	// InverseKendallTau returns the θ whose population Kendall's
	// tau is tau. The result is not validated.
	InverseKendallTau(tau float64) (float64, error)
}

// A mixer is a Family sampled with the Marshall–Olkin construction:
// if V is drawn from the mixing law and E₁…E_d are independent
// standard exponentials, L(Eᵢ/V) has the copula as its distribution,
// where L is the Laplace transform of V.
type mixer interface {
	mixing(theta float64, src rand.Source) (stats.Dist, error)
	laplace(t, theta float64) float64
}

// A sampler is a Family with its own sampling algorithm.
type sampler interface {
	rand(n int, p Params, src rand.Source) (*mat.Dense, error)
}

// A pdfer is a Family with a closed form for the density itself.
type pdfer interface {
	pdf(t *Terms, p Params) ([]float64, error)
}

var families = map[string]Family{
	"clayton": Clayton{},
	"gumbel":  Gumbel{},
	"frank":   Frank{},
}

// ByName returns the copula for the named family.
func ByName(name string) (Copula, error) {
	f, ok := families[strings.ToLower(name)]
	if !ok {
		return Copula{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFamily, name, strings.Join(Families(), ", "))
	}
	return New(f), nil
}

// Families returns the names of the built-in families in sorted
// order.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
