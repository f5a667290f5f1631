// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestBrent(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"sqrt2", func(x float64) float64 { return x*x - 2 }, 0, 2, math.Sqrt2},
		{"cos", math.Cos, 0, 3, math.Pi / 2},
		{"cubic", func(x float64) float64 { return x*x*x - 2*x - 5 }, 2, 3, 2.0945514815423265},
		{"endpoint", func(x float64) float64 { return x - 1 }, 1, 5, 1},
	}
	for _, test := range tests {
		got, err := Brent(test.f, test.a, test.b, 1e-12, 100)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%s: want %v, got %v", test.name, test.want, got)
		}
	}
}

func TestBrentNotBracketed(t *testing.T) {
	_, err := Brent(func(x float64) float64 { return x*x + 1 }, -1, 1, 1e-12, 100)
	if err != ErrNoBracket {
		t.Errorf("want ErrNoBracket, got %v", err)
	}
}

func TestBracketIncreasing(t *testing.T) {
	f := func(x float64) float64 { return x - 50 }
	lo, hi, err := BracketIncreasing(f, -2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !(f(lo) <= 0 && f(hi) >= 0) {
		t.Errorf("[%v, %v] does not bracket 50", lo, hi)
	}
	if lo != 32 || hi != 64 {
		t.Errorf("want [32, 64], got [%v, %v]", lo, hi)
	}

	lo, hi, err = BracketIncreasing(func(x float64) float64 { return x + 5 }, -2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if lo != -8 || hi != -4 {
		t.Errorf("want [-8, -4], got [%v, %v]", lo, hi)
	}
}

func TestBracketIncreasingGivesUp(t *testing.T) {
	// Negative everywhere, so the right side never brackets.
	f := func(x float64) float64 { return -1 / (1 + x*x) }
	if _, _, err := BracketIncreasing(f, -2, 2); err != ErrNoBracket {
		t.Errorf("want ErrNoBracket, got %v", err)
	}
}
