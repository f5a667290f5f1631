// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command copula fits, evaluates and samples Archimedean copulas.
//
// Observations are read as CSV, one row per observation, from the file
// named on the command line or from stdin. Flags may also be set with
// COPULA_* environment variables or in a copula.yaml file.
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/aclements/go-copula/copula"
	"github.com/aclements/go-copula/stats"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// env is the state shared by every subcommand once flags are parsed.
type env struct {
	cfg    *config
	log    logr.Logger
	copula copula.Copula
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	c, err := copula.ByName(cfg.Family)
	if err != nil {
		return nil, err
	}
	c.Log = log
	c.Progress = logProgress{log}
	return &env{cfg: cfg, log: log, copula: c}, nil
}

func (e *env) params() copula.Params {
	return copula.Params{Theta: e.cfg.Theta, D: e.cfg.Dim}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "copula",
		Short:        "Fit, evaluate and sample Archimedean copulas",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringP("family", "f", "clayton", fmt.Sprintf("copula family (%v)", copula.Families()))
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("header", false, "skip the first row of CSV input")

	root.AddCommand(newFitCmd(), newEvalCmd("cdf"), newEvalCmd("pdf"), newRandCmd())
	return root
}

func newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit [file]",
		Short: "Estimate theta from observations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			x, err := readInput(cmd, args, e.cfg.Header)
			if err != nil {
				return err
			}
			if !e.cfg.Uniform {
				x = stats.PseudoObservations(x)
			}
			method, err := copula.ParseMethod(e.cfg.Method)
			if err != nil {
				return err
			}
			fit, err := e.copula.Fit(x, copula.FitOptions{
				Method: method,
				Src:    rand.NewSource(e.cfg.Seed),
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "family %s  method %v  N %d  d %d\n", fit.Copula.Name(), fit.Method, fit.N, fit.Params.D)
			fmt.Fprintf(w, "theta %.6g\n", fit.Params.Theta)
			fmt.Fprintf(w, "loglikelihood %.6g  aic %.6g  bic %.6g\n", fit.LogLikelihood, fit.AIC, fit.BIC)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringP("method", "m", copula.MLE.String(), fmt.Sprintf("estimation method (%v)", copula.Methods()))
	fs.Bool("uniform", false, "input is already on the copula scale; skip the rank transform")
	fs.Uint64("seed", 1, "seed for the random MLE starting value")
	return cmd
}

// newEvalCmd returns the cdf or pdf command.
func newEvalCmd(op string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op + " [file]",
		Short: fmt.Sprintf("Evaluate the copula %s at each row", op),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			x, err := readInput(cmd, args, e.cfg.Header)
			if err != nil {
				return err
			}
			_, d := x.Dims()
			p := copula.Params{Theta: e.cfg.Theta, D: d}

			var out []float64
			switch {
			case op == "cdf":
				out, err = e.copula.CDF(x, p)
			case e.cfg.Log:
				out, err = e.copula.LogPDF(x, p)
			default:
				out, err = e.copula.PDF(x, p)
			}
			if err != nil {
				return err
			}
			for _, v := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%.6g\n", v)
			}
			return nil
		},
	}
	cmd.Flags().Float64P("theta", "t", 0, "dependence parameter")
	if op == "pdf" {
		cmd.Flags().Bool("log", false, "print the log density")
	}
	return cmd
}

func newRandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rvs",
		Short: "Print random observations as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			x, err := e.copula.Rand(e.cfg.N, e.params(), rand.NewSource(e.cfg.Seed))
			if err != nil {
				return err
			}
			if err := writeCSV(cmd.OutOrStdout(), x); err != nil {
				return err
			}
			if e.log.V(1).Enabled() {
				_, d := x.Dims()
				col := make([]float64, e.cfg.N)
				for j := 0; j < d; j++ {
					mean, std := stat.MeanStdDev(mat.Col(col, j, x), nil)
					e.log.V(1).Info("sampled column", "column", j, "mean", mean, "stddev", std)
				}
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Float64P("theta", "t", 0, "dependence parameter")
	fs.IntP("dim", "d", 2, "number of variables")
	fs.IntP("n", "n", 1000, "number of observations")
	fs.Uint64("seed", 1, "random seed")
	return cmd
}
