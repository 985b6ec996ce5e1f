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

import "math"

// Class is the outcome of the special-value pre-scan.
type Class uint8

const (
	// AllFinite means no NaN or infinity is present.
	AllFinite Class = iota
	// ContainsNaN means at least one NaN is present.
	ContainsNaN
	// OnlyPositiveInfinity means +Inf is present, and neither -Inf nor NaN.
	OnlyPositiveInfinity
	// OnlyNegativeInfinity means -Inf is present, and neither +Inf nor NaN.
	OnlyNegativeInfinity
	// MixedInfinities means both +Inf and -Inf are present and no NaN.
	MixedInfinities
)

func (c Class) String() string {
	switch c {
	case AllFinite:
		return "AllFinite"
	case ContainsNaN:
		return "ContainsNaN"
	case OnlyPositiveInfinity:
		return "OnlyPositiveInfinity"
	case OnlyNegativeInfinity:
		return "OnlyNegativeInfinity"
	case MixedInfinities:
		return "MixedInfinities"
	default:
		return "Class(?)"
	}
}

// Result returns the value forced by a special class. ok is false for
// AllFinite, whose result has to be computed.
func (c Class) Result() (r float64, ok bool) {
	switch c {
	case ContainsNaN, MixedInfinities:
		return math.NaN(), true
	case OnlyPositiveInfinity:
		return math.Inf(1), true
	case OnlyNegativeInfinity:
		return math.Inf(-1), true
	default:
		return 0, false
	}
}

// Classify scans all values once and returns their Class.
//
// Example:
//
//	Classify([]float64{1, math.Inf(1)})              // OnlyPositiveInfinity
//	Classify([]float64{math.Inf(-1), math.Inf(1)})   // MixedInfinities
func Classify(values []float64) Class {
	var t tally
	for _, x := range values {
		t.observe(x)
	}
	return t.class()
}

// tally counts special values so that classification can be done after
// the fact by the streaming Accumulator.
type tally struct {
	nan    int
	posInf int
	negInf int
}

// observe records x and reports whether it was a special value.
func (t *tally) observe(x float64) bool {
	switch {
	case x != x:
		t.nan++
	case x > math.MaxFloat64:
		t.posInf++
	case x < -math.MaxFloat64:
		t.negInf++
	default:
		return false
	}
	return true
}

func (t *tally) merge(o tally) {
	t.nan += o.nan
	t.posInf += o.posInf
	t.negInf += o.negInf
}

func (t tally) class() Class {
	switch {
	case t.nan > 0:
		return ContainsNaN
	case t.posInf > 0 && t.negInf > 0:
		return MixedInfinities
	case t.posInf > 0:
		return OnlyPositiveInfinity
	case t.negInf > 0:
		return OnlyNegativeInfinity
	default:
		return AllFinite
	}
}
