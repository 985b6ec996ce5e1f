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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-exactsum/hwy/contrib/exactsum"
	"github.com/ajroetker/go-exactsum/internal/oracle"
)

type sumOptions struct {
	file         string
	format       string
	verify       bool
	naive        bool
	report       bool
	permutations int
}

func newSumCmd(a *app) *cobra.Command {
	var opts sumOptions
	cmd := &cobra.Command{
		Use:   "sum [flags] [--] [values...]",
		Short: "Print the correctly-rounded sum of the given values",
		Example: `  exactsum sum -- 1 1e100 1 -1e100
  seq 1 100000 | exactsum sum --verify --report
  exactsum sum --file data.txt --permutations 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSum(cmd, args, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "read values from this file instead of stdin")
	f.StringVar(&opts.format, "format", "g", "output format: g, e, x (hex float) or b (bit pattern)")
	f.BoolVar(&opts.verify, "verify", false, "compare the result bit for bit with the arbitrary-precision oracle")
	f.BoolVar(&opts.naive, "naive", false, "also print the naive left-to-right sum")
	f.BoolVar(&opts.report, "report", false, "print class, parts, components and flags")
	f.IntVarP(&opts.permutations, "permutations", "p", 0, "re-sum this many shuffled copies and compare; 0 disables (overrides EXACTSUM_PERMUTATIONS)")
	return cmd
}

func (a *app) runSum(cmd *cobra.Command, args []string, opts sumOptions) error {
	format, err := newFormatter(opts.format)
	if err != nil {
		return err
	}
	perms := a.permutations(cmd, opts.permutations, 0)
	if perms < 0 {
		return fmt.Errorf("negative permutation count %d", perms)
	}
	values, err := loadValues(args, opts.file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)

	sum := exactsum.ExactSum(values)
	a.logger.Debug("summed", zap.Int("addends", len(values)), zap.Float64("sum", sum))
	fmt.Fprintln(out, format(sum))

	if opts.naive {
		p.Fprintf(out, "naive:        %s\n", format(naiveSum(values)))
	}

	if opts.report {
		r := exactsum.Analyze(values)
		a.logger.Debug("analyzed",
			zap.Stringer("class", r.Class),
			zap.Int("parts", r.Parts),
			zap.Int("components", r.Components),
			zap.Stringer("flags", r.Flags),
		)
		p.Fprintf(out, "class:        %v\n", r.Class)
		p.Fprintf(out, "addends:      %d\n", r.Addends)
		p.Fprintf(out, "parts:        %d\n", r.Parts)
		p.Fprintf(out, "components:   %d\n", r.Components)
		p.Fprintf(out, "flags:        %v\n", r.Flags)
	}

	if opts.verify {
		want, err := oracle.Sum(values, a.cfg.OraclePrec)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		if !oracle.Equal(sum, want) {
			a.logger.Error("oracle mismatch", zap.Float64("got", sum), zap.Float64("want", want))
			return fmt.Errorf("verify: %w: got %s, oracle %s", errMismatch, format(sum), format(want))
		}
		p.Fprintf(out, "oracle:       match (%d bits)\n", a.cfg.OraclePrec)
	}

	if perms > 0 {
		if bad, ok := shuffleCheck(values, sum, perms); !ok {
			a.logger.Error("permutation mismatch", zap.Float64s("permutation", bad))
			return fmt.Errorf("permutations: %w: a shuffled order sums to %s", errMismatch, format(exactsum.ExactSum(bad)))
		}
		p.Fprintf(out, "permutations: %d identical\n", perms)
	}
	return nil
}
