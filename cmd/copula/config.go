// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/aclements/go-copula/copula"
)

// config is the merged view of flags, COPULA_* environment variables
// and the optional copula.yaml file, in that order of precedence.
type config struct {
	Family   string  `mapstructure:"family"`
	Method   string  `mapstructure:"method"`
	Theta    float64 `mapstructure:"theta"`
	Dim      int     `mapstructure:"dim"`
	N        int     `mapstructure:"n"`
	Seed     uint64  `mapstructure:"seed"`
	Uniform  bool    `mapstructure:"uniform"`
	Header   bool    `mapstructure:"header"`
	Log      bool    `mapstructure:"log"`
	LogLevel string  `mapstructure:"log-level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("family", "clayton")
	v.SetDefault("method", copula.MLE.String())
	v.SetDefault("dim", 2)
	v.SetDefault("n", 1000)
	v.SetDefault("seed", 1)
	v.SetDefault("log-level", "info")
}

// loadConfig builds the configuration for a command invocation from
// its parsed flags.
func loadConfig(flags *pflag.FlagSet) (*config, error) {
	v := viper.New()

	v.SetConfigName("copula")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/copula")

	v.SetEnvPrefix("COPULA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func validateConfig(cfg *config) error {
	if _, err := copula.ByName(cfg.Family); err != nil {
		return err
	}
	if _, err := copula.ParseMethod(cfg.Method); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.N < 1 {
		return fmt.Errorf("n must be positive, got %d", cfg.N)
	}
	return nil
}
