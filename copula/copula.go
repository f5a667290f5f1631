// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Progress is notified as evaluation loops over the columns of an
// observation matrix. Step is called with done = 1, …, total.
type Progress interface {
	Step(op string, done, total int)
}

// Copula is an Archimedean copula of a fixed generator family.
//
// The zero value of every field except Family is a reasonable
// default.
type Copula struct {
	Family Family

	// Progress, if non-nil, receives per-column progress of CDF
	// and density evaluation.
	Progress Progress

	// Log receives debug records about fitting. The zero Logger
	// discards them.
	Log logr.Logger
}

// New returns the copula for family f.
func New(f Family) Copula {
	return Copula{Family: f}
}

// Name returns the family name.
func (c Copula) Name() string {
	return c.Family.Name()
}

// NumParams returns the number of scalar parameters the family
// counts for AIC and BIC. Clayton and Gumbel count θ and d; Frank,
// whose d is fixed, counts θ alone.
func (c Copula) NumParams() int {
	return c.Family.NumParams()
}

// CheckParams returns a *ValidationError if p is not a valid
// parameter set for c.
func (c Copula) CheckParams(p Params) error {
	if err := c.checkDim(p.D); err != nil {
		return err
	}
	if math.IsNaN(p.Theta) || math.IsInf(p.Theta, 0) {
		return &ValidationError{"theta", fmt.Sprintf("theta must be a finite scalar, got %v", p.Theta)}
	}
	b := c.Family.Bounds(p.D)
	if !b.Contains(p.Theta) {
		excluded := " "
		if len(b.Excluded) != 0 {
			excluded = fmt.Sprintf(" cannot be any of %v and ", b.Excluded)
		}
		return &ValidationError{"theta", fmt.Sprintf("theta parameter%smust lie within %v when d=%d. However, theta=%v", excluded, b, p.D, p.Theta)}
	}
	return nil
}

func (c Copula) checkDim(d int) error {
	if d < 2 {
		return &ValidationError{"d", fmt.Sprintf("d (dimensions parameter) must be greater than or equal to 2, got %d", d)}
	}
	if maxDim := c.Family.MaxDim(); maxDim != 0 && d > maxDim {
		return &ValidationError{"d", fmt.Sprintf("the %s copula is only defined for d <= %d, got %d", c.Name(), maxDim, d)}
	}
	return nil
}

func (c Copula) check(x mat.Matrix, p Params) error {
	if err := c.CheckParams(p); err != nil {
		return err
	}
	if _, d := x.Dims(); d != p.D {
		return fmt.Errorf("%w: observations have %d columns but d=%d", ErrDimensionMismatch, d, p.D)
	}
	return nil
}

// terms evaluates the generator on every entry of x.
func (c Copula) terms(x mat.Matrix, p Params, op string) *Terms {
	n, d := x.Dims()
	g := mat.NewDense(n, d, nil)
	s := make([]float64, n)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		for i, u := range col {
			col[i] = c.Family.Generator(u, p.Theta)
		}
		g.SetCol(j, col)
		floats.Add(s, col)
		if c.Progress != nil {
			c.Progress.Step(op, j+1, d)
		}
	}
	return &Terms{X: x, G: g, S: s}
}

// CDF returns the copula distribution function at each row of x,
// φ⁻¹(Σⱼ φ(x_j)).
func (c Copula) CDF(x mat.Matrix, p Params) ([]float64, error) {
	if err := c.check(x, p); err != nil {
		return nil, err
	}
	s := c.terms(x, p, "cdf").S
	for i, t := range s {
		s[i] = c.Family.GeneratorInverse(t, p.Theta)
	}
	return s, nil
}

// LogPDF returns the log of the copula density at each row of x.
func (c Copula) LogPDF(x mat.Matrix, p Params) ([]float64, error) {
	if err := c.check(x, p); err != nil {
		return nil, err
	}
	return c.Family.LogPDF(c.terms(x, p, "logpdf"), p)
}

// PDF returns the copula density at each row of x.
func (c Copula) PDF(x mat.Matrix, p Params) ([]float64, error) {
	if err := c.check(x, p); err != nil {
		return nil, err
	}
	t := c.terms(x, p, "pdf")
	if f, ok := c.Family.(pdfer); ok {
		return f.pdf(t, p)
	}
	out, err := c.Family.LogPDF(t, p)
	if err != nil {
		return nil, err
	}
	for i, l := range out {
		out[i] = math.Exp(l)
	}
	return out, nil
}

// LogLikelihood returns the sum of the log density over the rows of x.
func (c Copula) LogLikelihood(x mat.Matrix, p Params) (float64, error) {
	l, err := c.LogPDF(x, p)
	if err != nil {
		return nan, err
	}
	return floats.Sum(l), nil
}

// AIC returns the Akaike information criterion of p on x.
func (c Copula) AIC(x mat.Matrix, p Params) (float64, error) {
	ll, err := c.LogLikelihood(x, p)
	if err != nil {
		return nan, err
	}
	return aic(ll, c.NumParams()), nil
}

// BIC returns the Bayesian information criterion of p on x.
func (c Copula) BIC(x mat.Matrix, p Params) (float64, error) {
	ll, err := c.LogLikelihood(x, p)
	if err != nil {
		return nan, err
	}
	n, _ := x.Dims()
	return bic(ll, c.NumParams(), n), nil
}

func aic(ll float64, k int) float64 {
	return 2*float64(k) - 2*ll
}

func bic(ll float64, k, n int) float64 {
	return float64(k)*math.Log(float64(n)) - 2*ll
}

// Rand returns n random observations from the copula as an n×d
// matrix. If src is nil, gonum's global source is used.
func (c Copula) Rand(n int, p Params, src rand.Source) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrSampleSize, n)
	}
	if err := c.CheckParams(p); err != nil {
		return nil, err
	}
	switch f := c.Family.(type) {
	case sampler:
		return f.rand(n, p, src)
	case mixer:
		return marshallOlkin(f, n, p, src)
	}
	return nil, notImplemented(c.Name(), "rand", "family has no sampling law")
}

func marshallOlkin(f mixer, n int, p Params, src rand.Source) (*mat.Dense, error) {
	v, err := f.mixing(p.Theta, src)
	if err != nil {
		return nil, err
	}
	unif := distuv.Uniform{Min: 0, Max: 1, Src: src}
	out := mat.NewDense(n, p.D, nil)
	for i := 0; i < n; i++ {
		vi := v.Rand()
		row := out.RawRowView(i)
		for j := range row {
			row[j] = f.laplace(-math.Log(unif.Rand())/vi, p.Theta)
		}
	}
	return out, nil
}
