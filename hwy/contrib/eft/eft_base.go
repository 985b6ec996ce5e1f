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

package eft

import "math"

// TwoSum returns s = fl(a+b) and the exact error e = (a+b) - s.
//
// No ordering between a and b is required. It costs six floating-point
// operations, three more than FastTwoSum.
//
// Example:
//
//	s, e := TwoSum(1, 0x1p-60)  // s = 1, e = 0x1p-60
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	a1 := s - b
	b1 := s - a1
	da := a - a1
	db := b - b1
	e = da + db
	return s, e
}

// FastTwoSum returns s = fl(a+b) and the exact error e = (a+b) - s,
// provided |a| >= |b| or a == 0. The result is unspecified otherwise.
func FastTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// splitFactor is 2^27 + 1, splitting a 53-bit significand into two halves
// of at most 26 bits each.
const splitFactor = 1<<27 + 1

// splitThreshold bounds |a| for which splitFactor*a cannot overflow.
const splitThreshold = 0x1p996

// Split returns hi and lo with a == hi + lo exactly, where hi has at most
// 26 significant bits and lo at most 26 bits (plus sign).
//
// When rounding a to 26 bits would overflow, which only happens within
// 2^-26 relative of MaxFloat64, hi is a truncated to 27 bits instead and
// lo holds the remaining 26 bits.
func Split(a float64) (hi, lo float64) {
	if math.Abs(a) > splitThreshold {
		// Scaling by a power of two is exact this far from the subnormals.
		hi, lo = Split(a * 0x1p-28)
		hi *= 0x1p28
		if math.IsInf(hi, 0) {
			hi = math.Float64frombits(math.Float64bits(a) &^ (1<<26 - 1))
			return hi, a - hi
		}
		return hi, lo * 0x1p28
	}
	// The conversion stops the compiler from fusing this product into the
	// subtraction below.
	c := float64(splitFactor * a)
	hi = c - (c - a)
	lo = a - hi
	return hi, lo
}
