// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-copula/copula"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRvs(t *testing.T) {
	out, _, err := run(t, "", "rvs", "--family", "gumbel", "--theta", "2", "-d", "3", "-n", "20", "--seed", "4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 20)
	for _, l := range lines {
		fields := strings.Split(l, ",")
		require.Len(t, fields, 3)
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			require.NoError(t, err)
			assert.True(t, 0 <= v && v <= 1, "%v out of range", v)
		}
	}

	again, _, err := run(t, "", "rvs", "--family", "gumbel", "--theta", "2", "-d", "3", "-n", "20", "--seed", "4")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRvsInvalid(t *testing.T) {
	_, _, err := run(t, "", "rvs", "--family", "frank", "--theta", "0")
	require.ErrorIs(t, err, copula.ErrInvalidParams)

	_, _, err = run(t, "", "rvs", "--family", "student", "--theta", "2")
	require.ErrorIs(t, err, copula.ErrUnknownFamily)
}

func TestCDF(t *testing.T) {
	out, _, err := run(t, "u,v\n0.3,0.4\n0.6,0.7\n", "cdf", "--header", "--family", "gumbel", "--theta", "1")
	require.NoError(t, err)
	assert.Equal(t, "0.12\n0.42\n", out)
}

func TestPDF(t *testing.T) {
	in := "0.3,0.4\n0.6,0.7\n"
	out, _, err := run(t, in, "pdf", "--family", "frank", "--theta", "5")
	require.NoError(t, err)
	logOut, _, err := run(t, in, "pdf", "--log", "--family", "frank", "--theta", "5")
	require.NoError(t, err)

	pdf := strings.Fields(out)
	logpdf := strings.Fields(logOut)
	require.Len(t, pdf, 2)
	require.Len(t, logpdf, 2)
	for i := range pdf {
		p, err := strconv.ParseFloat(pdf[i], 64)
		require.NoError(t, err)
		l, err := strconv.ParseFloat(logpdf[i], 64)
		require.NoError(t, err)
		assert.InEpsilon(t, p, math.Exp(l), 1e-4)
	}
}

func TestFit(t *testing.T) {
	sample, _, err := run(t, "", "rvs", "--family", "clayton", "--theta", "3", "-n", "1000", "--seed", "2")
	require.NoError(t, err)

	for _, method := range copula.Methods() {
		out, _, err := run(t, sample, "fit", "--family", "clayton", "--method", method)
		require.NoError(t, err, method)
		assert.Contains(t, out, "family clayton  method "+method+"  N 1000  d 2")

		var theta float64
		for _, l := range strings.Split(out, "\n") {
			if rest, ok := strings.CutPrefix(l, "theta "); ok {
				theta, err = strconv.ParseFloat(rest, 64)
				require.NoError(t, err)
			}
		}
		assert.InDelta(t, 3, theta, 0.5, method)
	}
}

func TestFitUniformDomain(t *testing.T) {
	_, _, err := run(t, "1,2\n3,4\n5,7\n", "fit", "--uniform")
	require.ErrorIs(t, err, copula.ErrDomain)

	// Without --uniform the rows are rank transformed first.
	_, _, err = run(t, "1,2\n3,4\n5,7\n6,5\n", "fit", "--method", "inverse_kendall_tau")
	require.NoError(t, err)
}

func TestBadInput(t *testing.T) {
	_, _, err := run(t, "0.1,x\n", "cdf", "--theta", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1, column 2")

	_, _, err = run(t, "", "cdf", "--theta", "2")
	require.Error(t, err)
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("COPULA_FAMILY", "gumbel")
	t.Setenv("COPULA_LOG_LEVEL", "debug")
	out, errOut, err := run(t, "0.3,0.4\n", "cdf", "--theta", "1")
	require.NoError(t, err)
	assert.Equal(t, "0.12\n", out)
	assert.Contains(t, errOut, "evaluating")

	t.Setenv("COPULA_METHOD", "moments")
	_, _, err = run(t, "0.3,0.4\n", "fit")
	require.ErrorIs(t, err, copula.ErrUnknownMethod)
}
