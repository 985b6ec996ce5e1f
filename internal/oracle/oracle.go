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

// Package oracle computes reference sums in arbitrary precision.
//
// It is independent of the EFT code it is used to validate: every value is
// converted exactly to a math/big.Float and added at a precision wide
// enough for the whole float64 range, then rounded once to nearest even.
package oracle

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

const (
	// MinPrec is the smallest accepted working precision in bits.
	MinPrec = 2048
	// DefaultPrec covers the span between the largest and the smallest
	// float64 (2098 bits) with room for carries from any practical number
	// of addends.
	DefaultPrec = 4096
)

var (
	// ErrPrecision is returned for a working precision below MinPrec.
	ErrPrecision = errors.New("oracle: precision below minimum")
	// ErrInexact is returned when an intermediate value did not fit the
	// working precision, so the reference itself would be rounded twice.
	ErrInexact = errors.New("oracle: working precision too small for an exact result")
)

// special mirrors the special-value policy of the code under test: NaN
// wins, then mixed infinities give NaN, then a single sign of infinity.
func special(values []float64) (float64, bool) {
	var nan bool
	var pos, neg int
	for _, x := range values {
		switch {
		case math.IsNaN(x):
			nan = true
		case math.IsInf(x, 1):
			pos++
		case math.IsInf(x, -1):
			neg++
		}
	}
	switch {
	case nan, pos > 0 && neg > 0:
		return math.NaN(), true
	case pos > 0:
		return math.Inf(1), true
	case neg > 0:
		return math.Inf(-1), true
	}
	return 0, false
}

func checkPrec(prec uint) error {
	if prec < MinPrec {
		return fmt.Errorf("%w: %d < %d", ErrPrecision, prec, MinPrec)
	}
	return nil
}

// exactSum returns the exact sum of finite values at prec bits.
func exactSum(values []float64, prec uint) (*big.Float, error) {
	sum := new(big.Float).SetPrec(prec)
	var x big.Float
	for i, v := range values {
		x.SetFloat64(v)
		sum.Add(sum, &x)
		if sum.Acc() != big.Exact {
			return nil, fmt.Errorf("%w: addend %d at %d bits", ErrInexact, i, prec)
		}
	}
	return sum, nil
}

// Sum returns the exact sum of values rounded to the nearest float64,
// computed with prec bits.
func Sum(values []float64, prec uint) (float64, error) {
	if err := checkPrec(prec); err != nil {
		return 0, err
	}
	if r, ok := special(values); ok {
		return r, nil
	}
	sum, err := exactSum(values, prec)
	if err != nil {
		return 0, err
	}
	f, _ := sum.Float64()
	return f, nil
}

// Sum32 returns the exact sum of values rounded to the nearest float32.
func Sum32(values []float32, prec uint) (float32, error) {
	wide := make([]float64, len(values))
	for i, v := range values {
		wide[i] = float64(v)
	}
	if err := checkPrec(prec); err != nil {
		return 0, err
	}
	if r, ok := special(wide); ok {
		return float32(r), nil
	}
	sum, err := exactSum(wide, prec)
	if err != nil {
		return 0, err
	}
	f, _ := sum.Float32()
	return f, nil
}

// Dot returns the exact dot product of a and b over their common length,
// rounded to the nearest float64. Special values are classified on the
// rounded float64 products.
func Dot(a, b []float64, prec uint) (float64, error) {
	if err := checkPrec(prec); err != nil {
		return 0, err
	}
	n := min(len(a), len(b))
	products := make([]float64, n)
	for i := 0; i < n; i++ {
		products[i] = a[i] * b[i]
	}
	if r, ok := special(products); ok {
		return r, nil
	}

	sum := new(big.Float).SetPrec(prec)
	var x, y, p big.Float
	p.SetPrec(prec)
	for i := 0; i < n; i++ {
		x.SetFloat64(a[i])
		y.SetFloat64(b[i])
		p.Mul(&x, &y)
		if p.Acc() != big.Exact {
			return 0, fmt.Errorf("%w: product %d at %d bits", ErrInexact, i, prec)
		}
		sum.Add(sum, &p)
		if sum.Acc() != big.Exact {
			return 0, fmt.Errorf("%w: product %d at %d bits", ErrInexact, i, prec)
		}
	}
	f, _ := sum.Float64()
	return f, nil
}

// Equal reports whether a and b have the same bit pattern. Any two NaNs
// are equal.
func Equal(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Float64bits(a) == math.Float64bits(b)
}

// Equal32 is Equal for float32.
func Equal32(a, b float32) bool {
	if a != a && b != b {
		return true
	}
	return math.Float32bits(a) == math.Float32bits(b)
}
