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

func TestKendallTau(t *testing.T) {
	check := func(x, y []float64, want float64) {
		t.Helper()
		got, err := KendallTau(x, y)
		if err != nil {
			t.Errorf("KendallTau(%v, %v): %v", x, y, err)
			return
		}
		if !aeq(want, got) {
			t.Errorf("KendallTau(%v, %v): want %v, got %v", x, y, want, got)
		}
	}

	check([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}, 1)
	check([]float64{1, 2, 3, 4, 5}, []float64{5, 4, 3, 2, 1}, -1)
	// C=6, D=4 out of 10 pairs.
	check([]float64{1, 2, 3, 4, 5}, []float64{3, 4, 1, 2, 5}, 0.2)
	// One pair tied in x, one tied in y: 4/sqrt(5*5).
	check([]float64{1, 1, 2, 3}, []float64{1, 2, 2, 3}, 0.8)
	// Pair tied in both: C=5, n1=n2=1: 5/5.
	check([]float64{1, 1, 2, 3}, []float64{2, 2, 3, 4}, 1)
}

func TestKendallTauMatchesGonum(t *testing.T) {
	// Without ties, τ_b is τ_a, which is what gonum computes.
	src := rand.NewSource(1)
	r := rand.New(src)
	x, y := make([]float64, 200), make([]float64, 200)
	for i := range x {
		x[i] = r.Float64()
		y[i] = x[i] + r.NormFloat64()*0.3
	}
	want := stat.Kendall(x, y, nil)
	got, err := KendallTau(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestKendallTauErrors(t *testing.T) {
	if _, err := KendallTau([]float64{1}, []float64{2}); err != ErrSampleSize {
		t.Errorf("want ErrSampleSize, got %v", err)
	}
	tau, err := KendallTau([]float64{1, 1, 1}, []float64{1, 2, 3})
	if err != ErrSamplesEqual {
		t.Errorf("want ErrSamplesEqual, got %v", err)
	}
	if !math.IsNaN(tau) {
		t.Errorf("want NaN, got %v", tau)
	}
}

func TestMergeCount(t *testing.T) {
	xs := []float64{3, 1, 2, 5, 4, 4}
	if got := mergeCount(xs, make([]float64, len(xs))); got != 4 {
		t.Errorf("want 4 inversions, got %d", got)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > xs[i] {
			t.Fatalf("not sorted: %v", xs)
		}
	}
}
