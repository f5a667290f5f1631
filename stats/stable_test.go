// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func TestPositiveStableLaplace(t *testing.T) {
	const n = 20000
	for _, alpha := range []float64{0.3, 0.5, 0.8} {
		d := PositiveStable(alpha, rand.NewSource(7))
		// E[exp(-sV)] = exp(-s^alpha).
		for _, s := range []float64{0.5, 1, 2} {
			sum := 0.0
			for i := 0; i < n; i++ {
				v := d.Rand()
				if v < 0 {
					t.Fatalf("alpha=%v: negative variate %v", alpha, v)
				}
				sum += math.Exp(-s * v)
			}
			want, got := math.Exp(-math.Pow(s, alpha)), sum/n
			if math.Abs(want-got) > 0.01 {
				t.Errorf("alpha=%v s=%v: Laplace transform want %v, got %v", alpha, s, want, got)
			}
		}
	}
}

func TestStableGaussian(t *testing.T) {
	// S(2, 0, γ, δ) is N(δ, 2γ²).
	d := StableDist{Alpha: 2, Scale: 1, Loc: 3, Src: rand.NewSource(3)}
	xs := make([]float64, 20000)
	for i := range xs {
		xs[i] = d.Rand()
	}
	mean, variance := stat.MeanVariance(xs, nil)
	if math.Abs(mean-3) > 0.05 {
		t.Errorf("want mean 3, got %v", mean)
	}
	if math.Abs(variance-2) > 0.1 {
		t.Errorf("want variance 2, got %v", variance)
	}
}

func TestStableCauchy(t *testing.T) {
	// S(1, 0, γ, δ) is Cauchy with median δ and quartiles δ ± γ.
	d := StableDist{Alpha: 1, Beta: 0, Scale: 2, Loc: 1, Src: rand.NewSource(5)}
	const n = 20000
	inside, below := 0, 0
	for i := 0; i < n; i++ {
		x := d.Rand()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("non-finite variate %v", x)
		}
		if math.Abs(x-1) < 2 {
			inside++
		}
		if x < 1 {
			below++
		}
	}
	if got := float64(inside) / n; math.Abs(got-0.5) > 0.02 {
		t.Errorf("want half the mass within one scale of the median, got %v", got)
	}
	if got := float64(below) / n; math.Abs(got-0.5) > 0.02 {
		t.Errorf("want median 1, got %v of the mass below it", got)
	}
}

func TestDeltaDist(t *testing.T) {
	d := DeltaDist{T: 1}
	for i := 0; i < 3; i++ {
		if x := d.Rand(); x != 1 {
			t.Errorf("DeltaDist{1} sampled %v", x)
		}
	}
}
