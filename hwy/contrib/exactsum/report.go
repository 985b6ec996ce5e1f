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

import (
	"math"
	"strings"
)

// Flags records floating-point conditions observed while summing. They
// stand in for the hardware exception flags, which Go does not expose.
type Flags uint8

const (
	// FlagInvalid marks an indeterminate result: +Inf and -Inf were added.
	FlagInvalid Flags = 1 << iota
	// FlagOverflow marks an intermediate sum of finite addends that
	// overflowed to infinity.
	FlagOverflow
	// FlagUnderflow marks a nonzero subnormal result. Sums of float64
	// values are multiples of the smallest subnormal, so such a result is
	// still exact.
	FlagUnderflow
	// FlagInexact marks a result that differs from the exact sum.
	FlagInexact
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagInvalid, "invalid"},
	{FlagOverflow, "overflow"},
	{FlagUnderflow, "underflow"},
	{FlagInexact, "inexact"},
}

// Has reports whether every flag in g is set in f.
func (f Flags) Has(g Flags) bool {
	return f&g == g
}

// String returns the set flags joined by "|", or "none".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// Report describes one summation.
type Report struct {
	Class Class
	Sum   float64
	// Addends is the number of values summed, including special values.
	Addends int
	// Parts is the size of the parts collection after accumulation.
	Parts int
	// Components is the number of nonzero components of the distilled
	// expansion. It is zero when the sum was forced by a special value or
	// an overflow.
	Components int
	Flags      Flags
}

// Analyze sums values like ExactSum and reports how the result was
// reached.
func Analyze(values []float64) Report {
	var acc Accumulator
	acc.AddSlice(values)
	return acc.Report()
}

// Report returns the Report for the addends accumulated so far.
func (a *Accumulator) Report() Report {
	r := Report{
		Class:   a.Class(),
		Addends: a.count,
		Parts:   len(a.parts),
	}
	if forced, ok := r.Class.Result(); ok {
		r.Sum = forced
		if r.Class == MixedInfinities {
			r.Flags |= FlagInvalid
		}
		return r
	}
	if a.overflow != 0 {
		r.Sum = a.overflow
		r.Flags |= FlagOverflow | FlagInexact
		return r
	}

	exp := distill(a.parts)
	r.Components = len(exp)
	r.Sum = round(exp)
	if r.Sum != 0 && math.Abs(r.Sum) < minNormal {
		r.Flags |= FlagUnderflow
	}
	if remainder(a.parts, r.Sum) != 0 {
		r.Flags |= FlagInexact
	}
	return r
}

// minNormal is the smallest positive normal float64, DBL_MIN in C.
const minNormal = 0x1p-1022
