// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestDebye(t *testing.T) {
	testFunc(t, "Debye(1)", func(x float64) float64 { return Debye(1, x) },
		map[float64]float64{
			0:   1,
			1:   0.777504634112248,
			-1:  1.277504634112248,
			2:   0.606947284609810,
			10:  0.164443465680,
			1e6: math.Pi * math.Pi / 6 / 1e6,
		})

	// D₂(1) = 0.70787847...
	if got := Debye(2, 1); !aeq(0.707878476, got) {
		t.Errorf("Debye(2, 1): want 0.707878476, got %v", got)
	}
	if got := Debye(1, nan); !math.IsNaN(got) {
		t.Errorf("Debye(1, NaN): want NaN, got %v", got)
	}
}

func TestDebyeReflection(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		for _, x := range []float64{0.1, 0.5, 3, 7} {
			want := Debye(n, x) + float64(n)*x/float64(n+1)
			if got := Debye(n, -x); !aeq(want, got) {
				t.Errorf("Debye(%d, %v): want %v, got %v", n, -x, want, got)
			}
		}
	}
}
