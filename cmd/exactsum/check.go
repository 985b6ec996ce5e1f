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
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-exactsum/hwy/contrib/exactsum"
	"github.com/ajroetker/go-exactsum/internal/oracle"
)

// checkCase is one entry of the regression table.
type checkCase struct {
	name     string
	values   []float64
	expected float64
}

var checkCases = []checkCase{
	{"large-magnitude cancellation", []float64{1.0, 1e100, 1.0, -1e100}, 2.0},
	{"near overflow", []float64{0.5e308, 0.5e308, -0.5e308}, 0.5e308},
	// 7.5 - fl(7.55555) is exact, and differs from fl(-0.05555).
	{"rounding accuracy", []float64{1.5, 2.5, 3.5, -7.55555}, -0x1.c710cb295eap-5},
	{"smallest normal", []float64{0x1p-1022, 0x1p-1022, -0x1p-1022}, 0x1p-1022},
	{"epsilon balance", []float64{1.0, -1.0, 0x1p-52, -0x1p-52}, 0},
	{"simple sum", []float64{1, 2, 3, 4, 5}, 15},
	{"ten tenths", []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}, 1.0},
	{"nan propagation", []float64{math.NaN(), 2.0, 3.0}, math.NaN()},
	{"zeros", []float64{0, 0, 0}, 0},
	{"extremely small", []float64{1e-300, 1e-300, -1e-300}, 1e-300},
	{"different magnitudes", []float64{1e100, 1e-100, -1e100}, 1e-100},
	{"empty input", nil, 0},
}

// defaultCheckPermutations applies when neither the flag nor
// EXACTSUM_PERMUTATIONS is set.
const defaultCheckPermutations = 1

func newCheckCmd(a *app) *cobra.Command {
	var perms int
	var format string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the built-in regression cases against the oracle",
		Long: `check sums each built-in case, compares the result bit for bit with the
arbitrary-precision oracle and with shuffled re-summations, and prints the
diagnostic flags. It exits with an error if any case fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, a.permutations(cmd, perms, defaultCheckPermutations), format)
		},
	}
	cmd.Flags().IntVarP(&perms, "permutations", "p", defaultCheckPermutations, "shuffled re-summations per case (overrides EXACTSUM_PERMUTATIONS)")
	cmd.Flags().StringVar(&format, "format", "e", "output format: g, e, x (hex float) or b (bit pattern)")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, perms int, formatName string) error {
	format, err := newFormatter(formatName)
	if err != nil {
		return err
	}
	if perms < 0 {
		return fmt.Errorf("negative permutation count %d", perms)
	}

	out := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)

	failed := 0
	for i, tc := range checkCases {
		sum := exactsum.ExactSum(tc.values)
		flags := exactsum.Analyze(tc.values).Flags

		want, err := oracle.Sum(tc.values, a.cfg.OraclePrec)
		if err != nil {
			return fmt.Errorf("case %d: %w", i+1, err)
		}
		valid := oracle.Equal(sum, want)
		matches := oracle.Equal(sum, tc.expected)
		_, permOK := shuffleCheck(tc.values, sum, perms)

		p.Fprintf(out, "case #%d: %s\n", i+1, tc.name)
		p.Fprintf(out, "  expected:     %s\n", format(tc.expected))
		p.Fprintf(out, "  result:       %s\n", format(sum))
		p.Fprintf(out, "  oracle:       %s (%s)\n", verdict(valid), format(want))
		if perms > 0 {
			p.Fprintf(out, "  permutations: %s\n", verdict(permOK))
		} else {
			p.Fprintf(out, "  permutations: skipped\n")
		}
		p.Fprintf(out, "  flags:        %v\n", flags)

		if !valid || !matches || !permOK {
			failed++
			a.logger.Error("case failed", zap.Int("case", i+1), zap.String("name", tc.name),
				zap.Bool("oracle", valid), zap.Bool("expected", matches), zap.Bool("permutations", permOK))
		}
	}

	passed := len(checkCases) - failed
	p.Fprintf(out, "%d of %d cases passed\n", passed, len(checkCases))
	if failed > 0 {
		return fmt.Errorf("check: %w: %d of %d cases failed", errMismatch, failed, len(checkCases))
	}
	return nil
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAILED"
}
