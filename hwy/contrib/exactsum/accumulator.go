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
	"slices"

	"github.com/ajroetker/go-exactsum/hwy/contrib/eft"
)

// Accumulator computes a correctly-rounded sum of values added one at a
// time. The zero value is an empty accumulator ready to use.
//
// NaN and infinities are tallied rather than summed, so Sum returns the
// same value as ExactSum over the same addends in any order.
//
// An Accumulator must not be used from multiple goroutines at once.
type Accumulator struct {
	// parts holds mutually non-overlapping pieces whose exact sum is the
	// exact sum of the finite addends, in the order they were created.
	parts    []float64
	specials tally
	// overflow is ±Inf once an intermediate sum overflowed. The parts are
	// frozen from then on.
	overflow float64
	count    int
}

// Add adds x to the accumulator.
func (a *Accumulator) Add(x float64) {
	a.count++
	if a.specials.observe(x) {
		return
	}
	a.addFinite(x)
}

// AddSlice adds every value in xs.
func (a *Accumulator) AddSlice(xs []float64) {
	for _, x := range xs {
		a.Add(x)
	}
}

// addFinite cascades x through the parts. x must be finite.
func (a *Accumulator) addFinite(x float64) {
	if a.overflow != 0 {
		return
	}
	residual := x
	for i := range a.parts {
		if residual == 0 {
			return
		}
		s, e := eft.TwoSum(a.parts[i], residual)
		if math.IsInf(s, 0) {
			a.overflow = s
			return
		}
		a.parts[i], residual = s, e
	}
	if residual != 0 {
		a.parts = append(a.parts, residual)
	}
}

// Merge adds everything accumulated by o into a. o is not modified.
// The result is the same as if every addend of o had been added to a.
func (a *Accumulator) Merge(o *Accumulator) {
	parts := o.parts
	if o == a {
		parts = slices.Clone(parts)
	}
	a.count += o.count
	a.specials.merge(o.specials)
	if o.overflow != 0 && a.overflow == 0 {
		a.overflow = o.overflow
	}
	for _, p := range parts {
		a.addFinite(p)
	}
}

// Sum returns the correctly-rounded sum of all addends.
func (a *Accumulator) Sum() float64 {
	if r, ok := a.specials.class().Result(); ok {
		return r
	}
	if a.overflow != 0 {
		return a.overflow
	}
	return reduce(a.parts)
}

// Sum32 returns the sum of all addends correctly rounded to float32.
func (a *Accumulator) Sum32() float32 {
	r := a.Sum()
	f := float32(r)
	if math.IsNaN(r) || math.IsInf(r, 0) || float64(f) == r {
		return f
	}

	// Rounding r a second time is only wrong when r is exactly half way
	// between two float32 values. Then the sign of the exact remainder
	// picks the side.
	var g float32
	var mid float64
	switch {
	case math.IsInf(float64(f), 0):
		// Past MaxFloat32 the next value up is 2^128.
		g = float32(math.Copysign(math.MaxFloat32, r))
		mid = math.Copysign(maxFloat32Mid, r)
	case r > float64(f):
		g = math.Nextafter32(f, float32(math.Inf(1)))
		mid = (float64(f) + float64(g)) / 2
	default:
		g = math.Nextafter32(f, float32(math.Inf(-1)))
		mid = (float64(f) + float64(g)) / 2
	}
	if mid != r {
		return f
	}
	switch rem := remainder(a.parts, r); {
	case rem > 0:
		return max(f, g)
	case rem < 0:
		return min(f, g)
	default:
		return f
	}
}

// maxFloat32Mid is the midpoint between MaxFloat32 and 2^128.
const maxFloat32Mid = 0x1.ffffffp127

// Class returns the special-value class of the addends so far.
func (a *Accumulator) Class() Class {
	return a.specials.class()
}

// Overflowed reports whether an intermediate sum of finite addends
// overflowed.
func (a *Accumulator) Overflowed() bool {
	return a.overflow != 0
}

// Count returns the number of addends seen, including special values.
func (a *Accumulator) Count() int {
	return a.count
}

// Len returns the number of parts currently held.
func (a *Accumulator) Len() int {
	return len(a.parts)
}

// Parts returns a copy of the parts in creation order.
func (a *Accumulator) Parts() []float64 {
	return slices.Clone(a.parts)
}

// Reset empties the accumulator, keeping its storage.
func (a *Accumulator) Reset() {
	a.parts = a.parts[:0]
	a.specials = tally{}
	a.overflow = 0
	a.count = 0
}
