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

// ExactSum returns the exact sum of values rounded to the nearest float64.
//
// The result does not depend on the order of values. Special values follow
// Classify: any NaN, or both +Inf and -Inf, give NaN; otherwise any
// infinity gives that infinity. An empty slice sums to 0.
//
// Example:
//
//	ExactSum([]float64{1e100, 1e-100, -1e100})  // 1e-100
func ExactSum(values []float64) float64 {
	if r, ok := Classify(values).Result(); ok {
		return r
	}

	// Classification already excluded NaN and infinities.
	var acc Accumulator
	for _, x := range values {
		acc.addFinite(x)
	}
	if acc.overflow != 0 {
		return acc.overflow
	}
	return reduce(acc.parts)
}

// ExactSum32 returns the exact sum of values rounded to the nearest
// float32. Every float32 converts to float64 exactly, so the sum is
// computed on the widened values and rounded once.
func ExactSum32(values []float32) float32 {
	var acc Accumulator
	for _, x := range values {
		acc.Add(float64(x))
	}
	return acc.Sum32()
}

// ExactDot returns the exact dot product Σ a[i]*b[i] rounded to the
// nearest float64.
//
// If the slices have different lengths, the computation uses the minimum
// length. Returns 0 if either slice is empty.
//
// Each product is split into its rounded value and exact error with
// eft.TwoProduct, and both are summed exactly. The result is correctly
// rounded unless a product overflows or its error falls below the
// subnormal range. Special values are classified on the rounded products,
// so Inf*0 counts as NaN.
func ExactDot(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	var t tally
	for i := 0; i < n; i++ {
		t.observe(float64(a[i] * b[i]))
	}
	if r, ok := t.class().Result(); ok {
		return r
	}

	var acc Accumulator
	for i := 0; i < n; i++ {
		p, e := eft.TwoProduct(a[i], b[i])
		acc.addFinite(p)
		acc.addFinite(e)
	}
	if acc.overflow != 0 {
		return acc.overflow
	}
	return reduce(acc.parts)
}
