// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRanks(t *testing.T) {
	got := Ranks([]float64{10, 30, 20, 20, 5})
	want := []float64{2, 5, 3.5, 3.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func TestPseudoObservations(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		-1, 100,
		5, 7,
		0, 7,
	})
	u := PseudoObservations(m)
	want := mat.NewDense(3, 2, []float64{
		0.25, 0.75,
		0.75, 0.375,
		0.5, 0.375,
	})
	if !mat.EqualApprox(u, want, 1e-12) {
		t.Errorf("want\n%v\ngot\n%v", mat.Formatted(want), mat.Formatted(u))
	}
}
