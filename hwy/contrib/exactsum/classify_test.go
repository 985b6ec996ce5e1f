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
	"testing"
)

func TestClassify(t *testing.T) {
	nan := math.NaN()
	pinf := math.Inf(1)
	ninf := math.Inf(-1)

	tests := []struct {
		name   string
		values []float64
		want   Class
	}{
		{"empty", nil, AllFinite},
		{"finite", []float64{1, -math.MaxFloat64, math.SmallestNonzeroFloat64}, AllFinite},
		{"nan", []float64{1, nan}, ContainsNaN},
		{"nan beats mixed infinities", []float64{pinf, ninf, nan}, ContainsNaN},
		{"nan beats positive infinity", []float64{nan, pinf}, ContainsNaN},
		{"positive infinity", []float64{pinf, 1, pinf}, OnlyPositiveInfinity},
		{"negative infinity", []float64{-1, ninf}, OnlyNegativeInfinity},
		{"mixed", []float64{pinf, ninf}, MixedInfinities},
		{"mixed reversed", []float64{ninf, 3, pinf}, MixedInfinities},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.values); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestClassResult(t *testing.T) {
	tests := []struct {
		class  Class
		want   float64
		wantOK bool
	}{
		{AllFinite, 0, false},
		{ContainsNaN, math.NaN(), true},
		{OnlyPositiveInfinity, math.Inf(1), true},
		{OnlyNegativeInfinity, math.Inf(-1), true},
		{MixedInfinities, math.NaN(), true},
	}
	for _, tt := range tests {
		got, ok := tt.class.Result()
		if ok != tt.wantOK {
			t.Errorf("%v.Result() ok = %v, want %v", tt.class, ok, tt.wantOK)
			continue
		}
		if math.IsNaN(tt.want) {
			if !math.IsNaN(got) {
				t.Errorf("%v.Result() = %v, want NaN", tt.class, got)
			}
		} else if got != tt.want {
			t.Errorf("%v.Result() = %v, want %v", tt.class, got, tt.want)
		}
	}
}

func TestClassString(t *testing.T) {
	want := map[Class]string{
		AllFinite:            "AllFinite",
		ContainsNaN:          "ContainsNaN",
		OnlyPositiveInfinity: "OnlyPositiveInfinity",
		OnlyNegativeInfinity: "OnlyNegativeInfinity",
		MixedInfinities:      "MixedInfinities",
		Class(200):           "Class(?)",
	}
	for c, s := range want {
		if c.String() != s {
			t.Errorf("Class(%d).String() = %q, want %q", uint8(c), c.String(), s)
		}
	}
}
