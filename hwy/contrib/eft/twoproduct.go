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

import (
	"math"

	"github.com/ajroetker/go-exactsum/hwy"
)

// TwoProduct returns p = fl(a*b) and the exact error e = (a*b) - p.
//
// This function variable is set at init to the FMA kernel when
// hwy.CurrentLevel() is hwy.DispatchFMA, and to BaseTwoProduct
// otherwise.
var TwoProduct func(a, b float64) (p, e float64)

var kernelName string

// KernelName returns the name of the selected TwoProduct kernel,
// "fma" or "dekker".
func KernelName() string {
	return kernelName
}

func init() {
	if hwy.CurrentLevel() == hwy.DispatchFMA {
		TwoProduct = twoProductFMA
		kernelName = "fma"
		return
	}
	TwoProduct = BaseTwoProduct
	kernelName = "dekker"
}

func twoProductFMA(a, b float64) (p, e float64) {
	p = float64(a * b)
	e = math.FMA(a, b, -p)
	return p, e
}

// balanceLimit bounds the smaller operand that can absorb a 2^53 rescale
// of the larger one without crossing splitThreshold.
const balanceLimit = 0x1p943

// BaseTwoProduct is the portable TwoProduct kernel. It computes the product
// error from half-width pieces whose pairwise products are exact. Every
// product is converted explicitly so the compiler cannot contract it into a
// fused multiply-add.
//
// An operand too large to split is scaled down by 2^53 and the other one up
// by 2^53, which leaves a*b unchanged. If both are large the product
// overflows and e is 0.
func BaseTwoProduct(a, b float64) (p, e float64) {
	if math.Abs(a) < math.Abs(b) {
		a, b = b, a
	}
	if math.Abs(a) > splitThreshold {
		if math.Abs(b) > balanceLimit {
			return float64(a * b), 0
		}
		a, b = a*0x1p-53, b*0x1p53
	}
	p = float64(a * b)
	ah, al := Split(a)
	bh, bl := Split(b)
	e = float64(al*bl) - (((p - float64(ah*bh)) - float64(al*bh)) - float64(ah*bl))
	return p, e
}
