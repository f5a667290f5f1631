// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package copula

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-copula/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

// Method is a parameter estimation method.
type Method int

const (
	// MLE maximizes the log-likelihood numerically.
	MLE Method = iota

	// LowDimMLE is MLE under the name used for low-dimensional
	// copulas. For single-parameter Archimedean families the two
	// are the same estimator.
	LowDimMLE

	// InverseKendallTau inverts the relationship between θ and the
	// population Kendall's tau at the sample tau. It requires
	// d = 2.
	InverseKendallTau
)

var methodNames = []string{
	MLE:               "mle",
	LowDimMLE:         "low_dim_mle",
	InverseKendallTau: "inverse_kendall_tau",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Methods returns the names of all estimation methods.
func Methods() []string {
	return append([]string(nil), methodNames...)
}

// ParseMethod returns the Method with the given name.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMethod, name)
}

// FitOptions controls Fit. The zero value fits by MLE with the
// family's default search interval.
type FitOptions struct {
	Method Method

	// Bounds is the search interval for θ used by MLE. If both
	// ends are zero, the family's default interval for the data's
	// dimension is used.
	Bounds [2]float64

	// Theta0 is the MLE starting value. If zero, θ is started at
	// the inverse of the mean pairwise Kendall's tau if that lies
	// inside Bounds, and otherwise at a uniform draw from Bounds.
	Theta0 float64

	// Src is the source for the random starting value. If nil,
	// gonum's global source is used.
	Src rand.Source

	// MaxEvaluations limits the number of log-likelihood
	// evaluations made by MLE. If zero, a default is used.
	MaxEvaluations int
}

const defaultMaxEvaluations = 1000

// Fitted is a copula together with parameters estimated from data.
type Fitted struct {
	Copula Copula
	Params Params
	Method Method

	// N is the number of observations fitted.
	N int

	// LogLikelihood, AIC and BIC are evaluated on the fitted data.
	// They are NaN if the density cannot be evaluated at Params.
	LogLikelihood, AIC, BIC float64
}

func (f *Fitted) CDF(x mat.Matrix) ([]float64, error) {
	return f.Copula.CDF(x, f.Params)
}

func (f *Fitted) LogPDF(x mat.Matrix) ([]float64, error) {
	return f.Copula.LogPDF(x, f.Params)
}

func (f *Fitted) PDF(x mat.Matrix) ([]float64, error) {
	return f.Copula.PDF(x, f.Params)
}

func (f *Fitted) Rand(n int, src rand.Source) (*mat.Dense, error) {
	return f.Copula.Rand(n, f.Params, src)
}

func (f *Fitted) String() string {
	return fmt.Sprintf("%s%v fitted by %v to %d observations: loglikelihood=%g aic=%g bic=%g",
		f.Copula.Name(), f.Params, f.Method, f.N, f.LogLikelihood, f.AIC, f.BIC)
}

// Fit estimates θ from data, an n×d matrix of observations on the
// copula scale (0, 1). d is the column count of data and n must be at
// least 2.
//
// Every failure to produce valid parameters is returned as a
// *FitError. There is no fallback from one method to another.
func (c Copula) Fit(data mat.Matrix, opts FitOptions) (*Fitted, error) {
	fail := func(err error) (*Fitted, error) {
		return nil, &FitError{Family: c.Name(), Method: opts.Method, Err: err}
	}

	n, d := data.Dims()
	if n < 2 {
		return fail(fmt.Errorf("%w: need at least 2 observations, got %d", ErrSampleSize, n))
	}
	if err := c.checkDim(d); err != nil {
		return fail(err)
	}
	if err := checkDomain(data); err != nil {
		return fail(err)
	}

	c.Log.V(1).Info("fitting copula", "family", c.Name(), "method", opts.Method, "n", n, "d", d)

	var theta float64
	var err error
	switch opts.Method {
	case MLE, LowDimMLE:
		theta, err = c.mle(data, opts)
	case InverseKendallTau:
		theta, err = c.inverseKendallTau(data)
	default:
		err = fmt.Errorf("%w %v", ErrUnknownMethod, opts.Method)
	}
	if err != nil {
		return fail(err)
	}

	p := Params{Theta: theta, D: d}
	if err := c.CheckParams(p); err != nil {
		return fail(err)
	}

	ll, err := c.logLikelihood(data, p)
	if err != nil {
		c.Log.V(1).Info("cannot evaluate fitted log-likelihood", "params", p, "err", err)
		ll = nan
	}
	f := &Fitted{
		Copula:        c,
		Params:        p,
		Method:        opts.Method,
		N:             n,
		LogLikelihood: ll,
		AIC:           aic(ll, c.NumParams()),
		BIC:           bic(ll, c.NumParams(), n),
	}
	c.Log.V(1).Info("fitted copula", "params", p, "loglikelihood", ll)
	return f, nil
}

func checkDomain(data mat.Matrix) error {
	n, d := data.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			if u := data.At(i, j); !(0 < u && u < 1) {
				return fmt.Errorf("%w: observation [%d,%d] is %v", ErrDomain, i, j, u)
			}
		}
	}
	return nil
}

// logLikelihood is LogLikelihood, except that a family without a
// closed-form log density at p falls back to the log of its density.
func (c Copula) logLikelihood(x mat.Matrix, p Params) (float64, error) {
	ll, err := c.LogLikelihood(x, p)
	if _, ok := c.Family.(pdfer); !ok || !errors.Is(err, ErrNotImplemented) {
		return ll, err
	}
	pdf, err := c.PDF(x, p)
	if err != nil {
		return nan, err
	}
	for i, v := range pdf {
		pdf[i] = math.Log(v)
	}
	return floats.Sum(pdf), nil
}

// inverseKendallTau returns θ such that the population Kendall's tau
// equals the sample tau-b of data.
func (c Copula) inverseKendallTau(data mat.Matrix) (float64, error) {
	if _, d := data.Dims(); d != 2 {
		return nan, fmt.Errorf("%w: inverse Kendall's tau requires d=2, got d=%d", ErrDimensionMismatch, d)
	}
	return c.tauEstimate(data)
}

// tauEstimate inverts the mean sample tau-b over all pairs of columns
// of data.
func (c Copula) tauEstimate(data mat.Matrix) (float64, error) {
	n, d := data.Dims()
	cols := make([][]float64, d)
	for j := range cols {
		cols[j] = mat.Col(nil, j, data)
	}
	var sum float64
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			tau, err := stats.KendallTau(cols[i], cols[j])
			if err != nil {
				return nan, err
			}
			sum += tau
		}
	}
	tau := sum / float64(d*(d-1)/2)
	theta, err := c.Family.InverseKendallTau(tau)
	if err != nil {
		return nan, err
	}
	c.Log.V(1).Info("inverted Kendall's tau", "n", n, "tau", tau, "theta", theta)
	return theta, nil
}

// mle minimizes the negative log-likelihood with Nelder–Mead. The
// search runs over x ∈ ℝ, mapped onto the open interval (lo, hi) by
// the logistic function.
func (c Copula) mle(data mat.Matrix, opts FitOptions) (float64, error) {
	_, d := data.Dims()
	lo, hi := opts.Bounds[0], opts.Bounds[1]
	if lo == 0 && hi == 0 {
		lo, hi = c.Family.FitBounds(d)
	}
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nan, fmt.Errorf("%w: invalid search bounds [%v, %v]", ErrInvalidParams, lo, hi)
	}
	toTheta := func(x float64) float64 {
		return lo + (hi-lo)/(1+math.Exp(-x))
	}
	fromTheta := func(theta float64) float64 {
		q := (theta - lo) / (hi - lo)
		q = math.Max(1e-9, math.Min(1-1e-9, q))
		return math.Log(q / (1 - q))
	}

	theta0 := c.startValue(data, opts, lo, hi)
	c.Log.V(1).Info("starting MLE", "theta0", theta0, "lo", lo, "hi", hi)

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			p := Params{Theta: toTheta(x[0]), D: d}
			if c.CheckParams(p) != nil {
				return inf
			}
			ll, err := c.logLikelihood(data, p)
			if err != nil || math.IsNaN(ll) || math.IsInf(ll, 0) {
				return inf
			}
			return -ll
		},
	}
	maxEval := opts.MaxEvaluations
	if maxEval == 0 {
		maxEval = defaultMaxEvaluations
	}
	settings := &optimize.Settings{FuncEvaluations: maxEval}
	res, err := optimize.Minimize(problem, []float64{fromTheta(theta0)}, settings, &optimize.NelderMead{})
	if res == nil {
		return nan, err
	}
	if err != nil {
		// Hitting an evaluation limit still leaves a usable
		// best point.
		c.Log.V(1).Info("optimizer stopped early", "status", res.Status, "err", err)
	}
	if math.IsInf(res.F, 1) {
		return nan, errors.New("log-likelihood is not finite anywhere the optimizer searched")
	}
	theta := toTheta(res.X[0])
	c.Log.V(1).Info("finished MLE", "theta", theta, "evaluations", res.Stats.FuncEvaluations, "status", res.Status)
	return theta, nil
}

func (c Copula) startValue(data mat.Matrix, opts FitOptions, lo, hi float64) float64 {
	if opts.Theta0 != 0 {
		return opts.Theta0
	}
	theta, err := c.tauEstimate(data)
	if err == nil && lo < theta && theta < hi {
		return theta
	}
	return distuv.Uniform{Min: lo, Max: hi, Src: opts.Src}.Rand()
}
