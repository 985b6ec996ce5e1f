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
	"errors"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-exactsum/hwy/contrib/exactsum"
	"github.com/ajroetker/go-exactsum/internal/oracle"
)

// errMismatch is wrapped by every verification failure.
var errMismatch = errors.New("result differs from reference")

// naiveSum is ordinary left-to-right addition.
func naiveSum(values []float64) float64 {
	return lo.Reduce(values, func(acc, v float64, _ int) float64 {
		return acc + v
	}, 0)
}

// shuffleCheck re-sums n shuffled copies of values and returns the first
// permutation whose sum differs from want, if any.
func shuffleCheck(values []float64, want float64, n int) (bad []float64, ok bool) {
	if len(values) < 2 {
		return nil, true
	}
	for i := 0; i < n; i++ {
		shuffled := lo.Shuffle(slices.Clone(values))
		if got := exactsum.ExactSum(shuffled); !oracle.Equal(got, want) {
			return shuffled, false
		}
	}
	return nil, true
}
