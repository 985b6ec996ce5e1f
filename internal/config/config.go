// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads settings for the exactsum command from the
// environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-exactsum/internal/oracle"
)

// Config holds settings shared by all exactsum subcommands. Command-line
// flags override these values.
type Config struct {
	// OraclePrec is the working precision of the reference oracle in bits.
	OraclePrec uint `env:"EXACTSUM_ORACLE_PREC" envDefault:"4096"`
	// Permutations is the number of shuffled re-summations per check. It is
	// nil when EXACTSUM_PERMUTATIONS is unset, so each command keeps its
	// own default.
	Permutations *int `env:"EXACTSUM_PERMUTATIONS"`
	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `env:"EXACTSUM_LOG_LEVEL" envDefault:"info"`
}

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("invalid config")

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	if c.OraclePrec < oracle.MinPrec {
		return fmt.Errorf("%w: oracle precision %d below %d bits", ErrInvalid, c.OraclePrec, oracle.MinPrec)
	}
	if c.Permutations != nil && *c.Permutations < 0 {
		return fmt.Errorf("%w: negative permutation count %d", ErrInvalid, *c.Permutations)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// PermutationsOr returns the configured permutation count, or def when
// EXACTSUM_PERMUTATIONS was not set.
func (c Config) PermutationsOr(def int) int {
	if c.Permutations == nil {
		return def
	}
	return *c.Permutations
}

// Level returns LogLevel as a zap level.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
