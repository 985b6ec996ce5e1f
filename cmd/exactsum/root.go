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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-exactsum/internal/config"
)

// app carries state shared by the subcommands once the root command has
// run its pre-run hook.
type app struct {
	cfg        config.Config
	logger     *zap.Logger
	verbose    bool
	oraclePrec uint
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "exactsum",
		Short: "Correctly-rounded floating-point summation",
		Long: `exactsum adds IEEE-754 double-precision values and returns their exact
sum rounded once to the nearest double, independent of the input order.

Results can be verified bit for bit against an arbitrary-precision
reference (--verify) and against shuffled re-summations (--permutations).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().UintVar(&a.oraclePrec, "oracle-prec", 0, "oracle working precision in bits (overrides EXACTSUM_ORACLE_PREC)")

	root.AddCommand(newSumCmd(a), newCheckCmd(a))
	return root
}

// setup loads the environment configuration, applies flag overrides and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("oracle-prec") {
		cfg.OraclePrec = a.oraclePrec
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		lvl = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
		lvl,
	)
	a.logger = zap.New(core).Named("exactsum")
	a.logger.Debug("configured",
		zap.Uint("oracle_prec", cfg.OraclePrec),
		zap.Intp("permutations", cfg.Permutations),
		zap.Stringer("level", lvl),
	)
	return nil
}

// permutations returns the shuffle count from the named flag if it was
// given, else from the configuration, else def.
func (a *app) permutations(cmd *cobra.Command, flagValue, def int) int {
	if cmd.Flags().Changed("permutations") {
		return flagValue
	}
	return a.cfg.PermutationsOr(def)
}
