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

package exactsum

import "github.com/ajroetker/go-exactsum/hwy/contrib/eft"

// reduce returns the exact sum of parts rounded to nearest even.
// parts must be finite and are not modified.
func reduce(parts []float64) float64 {
	return round(distill(parts))
}

// distill folds parts, last created first, into an expansion: a sequence
// of nonzero, non-overlapping components of strictly increasing magnitude
// with the same exact sum.
func distill(parts []float64) []float64 {
	exp := make([]float64, 0, len(parts))
	for j := len(parts) - 1; j >= 0; j-- {
		x := parts[j]
		i := 0
		for _, y := range exp {
			hi, lo := eft.TwoSum(x, y)
			if lo != 0 {
				exp[i] = lo
				i++
			}
			x = hi
		}
		exp = exp[:i]
		if x != 0 {
			exp = append(exp, x)
		}
	}
	return exp
}

// round returns the value of the expansion rounded to nearest even.
func round(exp []float64) float64 {
	n := len(exp)
	if n == 0 {
		return 0
	}
	n--
	hi := exp[n]
	var lo float64
	for n > 0 {
		n--
		hi, lo = eft.FastTwoSum(hi, exp[n])
		if lo != 0 {
			break
		}
	}

	// hi+lo is exact here. If lo is exactly half an ulp of hi, the rounding
	// of hi went to even; the components still below decide the tie, and
	// when they push the same way as lo the true sum lies past the
	// midpoint.
	if n > 0 && lo != 0 && (lo < 0) == (exp[n-1] < 0) {
		y := lo * 2
		x := hi + y
		if x-hi == y {
			hi = x
		}
	}
	return hi
}

// remainder returns the exact sum of parts minus r, rounded to nearest.
// Its sign is exact.
func remainder(parts []float64, r float64) float64 {
	var tmp Accumulator
	tmp.parts = make([]float64, len(parts), len(parts)+1)
	copy(tmp.parts, parts)
	tmp.addFinite(-r)
	if tmp.overflow != 0 {
		return tmp.overflow
	}
	return reduce(tmp.parts)
}
