// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Ranks returns the 1-based ranks of xs. Tied values are all
// assigned the average of the ranks they span.
func Ranks(xs []float64) []float64 {
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return xs[order[a]] < xs[order[b]]
	})

	ranks := make([]float64, len(xs))
	for i := 0; i < len(order); {
		rank1, v1 := i+1, xs[order[i]]
		// Consume values that tie this value (including itself).
		j := i
		for ; j < len(order) && xs[order[j]] == v1; j++ {
		}
		rank := float64(j+rank1) / 2
		for ; i < j; i++ {
			ranks[order[i]] = rank
		}
	}
	return ranks
}

// PseudoObservations maps each column of the n×d matrix m onto the
// open unit interval by its scaled ranks rank/(n+1). This is the
// empirical marginal transform used to fit a copula to raw data.
func PseudoObservations(m mat.Matrix) *mat.Dense {
	n, d := m.Dims()
	out := mat.NewDense(n, d, nil)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, m)
		for i, r := range Ranks(col) {
			out.Set(i, j, r/float64(n+1))
		}
	}
	return out
}
