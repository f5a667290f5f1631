// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// readInput reads a CSV matrix from the file in args, or from the
// command's input if there is none.
func readInput(cmd *cobra.Command, args []string, header bool) (*mat.Dense, error) {
	if len(args) == 0 {
		return readCSV(cmd.InOrStdin(), header)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCSV(f, header)
}

func readCSV(r io.Reader, header bool) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var data []float64
	rows, cols := 0, 0
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header && line == 1 {
			continue
		}
		if cols == 0 {
			cols = len(rec)
		}
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, i+1, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, fmt.Errorf("no observations in input")
	}
	return mat.NewDense(rows, cols, data), nil
}

func writeCSV(w io.Writer, x mat.Matrix) error {
	cw := csv.NewWriter(w)
	n, d := x.Dims()
	rec := make([]string, d)
	for i := 0; i < n; i++ {
		for j := range rec {
			rec[j] = strconv.FormatFloat(x.At(i, j), 'g', 6, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
