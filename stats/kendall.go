// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// KendallTau returns Kendall's rank correlation τ_b between x and y,
//
//	τ_b = (C - D) / sqrt((n₀ - n₁)(n₀ - n₂))
//
// where C and D are the numbers of concordant and discordant pairs,
// n₀ = n(n-1)/2, and n₁ and n₂ are the numbers of pairs tied in x
// and in y. Unlike gonum's stat.Kendall, ties are corrected for, so
// the result is meaningful for discrete data.
//
// This uses Knight's O(n log n) algorithm.
//
// KendallTau returns ErrSampleSize if there are fewer than two
// observations and ErrSamplesEqual if x or y is constant.
//
// Knight, W. R. (1966). "A Computer Method for Calculating Kendall's
// Tau with Ungrouped Data". Journal of the American Statistical
// Association 61 (314): 436-439.
func KendallTau(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		panic("len(x) != len(y)")
	}
	n := len(x)
	if n < 2 {
		return nan, ErrSampleSize
	}

	// Order pairs by x, breaking ties by y.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if x[i] != x[j] {
			return x[i] < x[j]
		}
		return y[i] < y[j]
	})
	ys := make([]float64, n)
	for k, i := range order {
		ys[k] = y[i]
	}

	// Count pairs tied in x, and pairs tied in both x and y.
	var xTies, jointTies int64
	for i := 0; i < n; {
		j := i + 1
		for ; j < n && x[order[j]] == x[order[i]]; j++ {
		}
		xTies += pairs(j - i)
		for k := i; k < j; {
			l := k + 1
			for ; l < j && ys[l] == ys[k]; l++ {
			}
			jointTies += pairs(l - k)
			k = l
		}
		i = j
	}

	// With pairs ordered by x, the discordant pairs are exactly
	// the inversions of ys.
	discordant := mergeCount(ys, make([]float64, n))

	var yTies int64
	for i := 0; i < n; {
		j := i + 1
		for ; j < n && ys[j] == ys[i]; j++ {
		}
		yTies += pairs(j - i)
		i = j
	}

	total := pairs(n)
	den := math.Sqrt(float64(total-xTies) * float64(total-yTies))
	if den == 0 {
		return nan, ErrSamplesEqual
	}
	return float64(total-xTies-yTies+jointTies-2*discordant) / den, nil
}

func pairs(k int) int64 {
	return int64(k) * int64(k-1) / 2
}

// mergeCount sorts xs in place and returns the number of inversions,
// that is, pairs i < j with xs[i] > xs[j]. buf must be at least as
// long as xs.
func mergeCount(xs, buf []float64) int64 {
	if len(xs) < 2 {
		return 0
	}
	mid := len(xs) / 2
	swaps := mergeCount(xs[:mid], buf[:mid]) + mergeCount(xs[mid:], buf[mid:])

	copy(buf, xs)
	l, r := buf[:mid], buf[mid:len(xs)]
	i, j, o := 0, 0, 0
	for i < len(l) && j < len(r) {
		if r[j] < l[i] {
			xs[o] = r[j]
			j++
			swaps += int64(len(l) - i)
		} else {
			xs[o] = l[i]
			i++
		}
		o++
	}
	for ; i < len(l); i++ {
		xs[o] = l[i]
		o++
	}
	for ; j < len(r); j++ {
		xs[o] = r[j]
		o++
	}
	return swaps
}
