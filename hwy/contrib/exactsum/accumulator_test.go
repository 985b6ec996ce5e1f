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
	"math/big"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-exactsum/internal/oracle"
)

func bigSum(values []float64) *big.Float {
	sum := new(big.Float).SetPrec(oracle.DefaultPrec)
	for _, v := range values {
		sum.Add(sum, new(big.Float).SetFloat64(v))
	}
	return sum
}

func TestAccumulatorZeroValue(t *testing.T) {
	var acc Accumulator
	if got := acc.Sum(); got != 0 || math.Signbit(got) {
		t.Errorf("zero Accumulator Sum() = %v, want +0", got)
	}
	if acc.Len() != 0 || acc.Count() != 0 {
		t.Errorf("zero Accumulator Len() = %d, Count() = %d", acc.Len(), acc.Count())
	}
	if acc.Class() != AllFinite {
		t.Errorf("zero Accumulator Class() = %v", acc.Class())
	}
}

// TestAccumulatorPartsInvariant checks that after every addend the exact
// sum of the parts equals the exact sum of the addends so far.
func TestAccumulatorPartsInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for i := 0; i < 200; i++ {
		values := randomInputs(r, 1+r.Intn(30))
		var acc Accumulator
		for j, v := range values {
			acc.Add(v)
			want := bigSum(values[:j+1])
			got := bigSum(acc.Parts())
			if want.Cmp(got) != 0 {
				t.Fatalf("after %d addends of %v: parts %v sum to %s, want %s",
					j+1, values, acc.Parts(), got.Text('g', 30), want.Text('g', 30))
			}
			for _, p := range acc.Parts() {
				if math.IsNaN(p) || math.IsInf(p, 0) {
					t.Fatalf("non-finite part %v in %v", p, acc.Parts())
				}
			}
		}
	}
}

func TestAccumulatorCascade(t *testing.T) {
	var acc Accumulator
	acc.Add(1)
	acc.Add(0x1p-53)
	acc.Add(0x1p-106)

	// Each rounding error is pushed into a new part.
	want := []float64{1, 0x1p-53, 0x1p-106}
	got := acc.Parts()
	if len(got) != len(want) {
		t.Fatalf("Parts() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Parts() = %v, want %v", got, want)
		}
	}

	// An exactly absorbed addend creates no part.
	acc.Add(2)
	if acc.Len() != 3 {
		t.Errorf("Len() after exact addend = %d, want 3", acc.Len())
	}
	// 3 + 2^-53 + 2^-106 is below the midpoint 3 + 2^-52.
	if got := acc.Sum(); got != 3 {
		t.Errorf("Sum() = %v, want 3", got)
	}
}

func TestAccumulatorMatchesExactSum(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		values := randomInputs(r, 1+r.Intn(30))
		if i%7 == 0 {
			values = append(values, math.NaN())
		}
		if i%11 == 0 {
			values = append(values, math.Inf(-1))
		}
		var acc Accumulator
		acc.AddSlice(values)
		if got, want := acc.Sum(), ExactSum(values); !oracle.Equal(got, want) {
			t.Fatalf("Accumulator.Sum() = %v, ExactSum = %v for %v", got, want, values)
		}
		if got, want := acc.Class(), Classify(values); got != want {
			t.Fatalf("Accumulator.Class() = %v, Classify = %v for %v", got, want, values)
		}
		if acc.Count() != len(values) {
			t.Fatalf("Count() = %d, want %d", acc.Count(), len(values))
		}
	}
}

func TestAccumulatorMerge(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for i := 0; i < 300; i++ {
		values := randomInputs(r, 2+r.Intn(40))
		if i%9 == 0 {
			values = append(values, math.Inf(1))
		}
		cut := r.Intn(len(values))

		var left, right Accumulator
		left.AddSlice(values[:cut])
		right.AddSlice(values[cut:])
		rightSum := right.Sum()
		left.Merge(&right)

		if got, want := left.Sum(), ExactSum(values); !oracle.Equal(got, want) {
			t.Fatalf("merged Sum() = %v, want %v (cut %d of %v)", got, want, cut, values)
		}
		if left.Count() != len(values) {
			t.Fatalf("merged Count() = %d, want %d", left.Count(), len(values))
		}
		if got := right.Sum(); !oracle.Equal(got, rightSum) {
			t.Fatalf("Merge modified its argument: Sum() = %v, was %v", got, rightSum)
		}
	}
}

func TestAccumulatorMergeSelf(t *testing.T) {
	values := []float64{1, 0x1p-53, 0x1p-106, 1e-300}
	var acc Accumulator
	acc.AddSlice(values)
	acc.Merge(&acc)

	doubled := append(append([]float64{}, values...), values...)
	if got, want := acc.Sum(), ExactSum(doubled); got != want {
		t.Errorf("self-merged Sum() = %v, want %v", got, want)
	}
}

func TestAccumulatorOverflow(t *testing.T) {
	var acc Accumulator
	acc.AddSlice([]float64{1e308, 1e308})
	if !acc.Overflowed() {
		t.Fatal("Overflowed() = false after 1e308+1e308")
	}
	acc.Add(-1e308)
	if got := acc.Sum(); !math.IsInf(got, 1) {
		t.Errorf("Sum() = %v, want +Inf", got)
	}

	// Special values still take priority.
	acc.Add(math.NaN())
	if got := acc.Sum(); !math.IsNaN(got) {
		t.Errorf("Sum() with NaN = %v, want NaN", got)
	}

	var other Accumulator
	other.Add(1)
	other.Merge(&acc)
	if !other.Overflowed() {
		t.Error("Merge did not carry the overflow")
	}
}

func TestAccumulatorReset(t *testing.T) {
	var acc Accumulator
	acc.AddSlice([]float64{1, 1e-100, math.Inf(1)})
	acc.AddSlice([]float64{1e308, 1e308})
	acc.Reset()

	if acc.Len() != 0 || acc.Count() != 0 || acc.Overflowed() || acc.Class() != AllFinite {
		t.Fatalf("after Reset: Len=%d Count=%d Overflowed=%v Class=%v",
			acc.Len(), acc.Count(), acc.Overflowed(), acc.Class())
	}
	acc.AddSlice([]float64{1e100, 1e-100, -1e100})
	if got := acc.Sum(); got != 1e-100 {
		t.Errorf("Sum() after Reset = %v, want 1e-100", got)
	}
}

func TestAccumulatorPartsIsCopy(t *testing.T) {
	var acc Accumulator
	acc.AddSlice([]float64{1, 0x1p-60})
	parts := acc.Parts()
	parts[0] = 1000
	if got := acc.Sum(); got != 1 {
		t.Errorf("Sum() = %v after mutating Parts() copy, want 1", got)
	}
}

func TestAccumulatorSum32(t *testing.T) {
	var acc Accumulator
	acc.AddSlice([]float64{1, 0x1p-24, 0x1p-80})
	if got, want := acc.Sum32(), float32(1+0x1p-23); got != want {
		t.Errorf("Sum32() = %v, want %v", got, want)
	}

	acc.Reset()
	acc.AddSlice([]float64{math.MaxFloat64 / 2})
	if got := acc.Sum32(); !math.IsInf(float64(got), 1) {
		t.Errorf("Sum32() beyond float32 range = %v, want +Inf", got)
	}
}

func TestDistill(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 300; i++ {
		var acc Accumulator
		acc.AddSlice(randomInputs(r, 1+r.Intn(30)))
		parts := acc.Parts()
		exp := distill(parts)

		if bigSum(exp).Cmp(bigSum(parts)) != 0 {
			t.Fatalf("distill(%v) = %v changes the sum", parts, exp)
		}
		for j, c := range exp {
			if c == 0 {
				t.Fatalf("distill(%v) = %v has a zero component", parts, exp)
			}
			if j > 0 && math.Abs(exp[j-1]) >= math.Abs(c) {
				t.Fatalf("distill(%v) = %v is not increasing in magnitude", parts, exp)
			}
		}
	}
}
