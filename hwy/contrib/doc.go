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

// Package contrib groups the floating-point building blocks layered on top
// of the hwy dispatch package.
//
// Subpackages:
//
//   - eft: error-free transformations (TwoSum, FastTwoSum, Split and
//     TwoProduct) that return a rounded result together with its exact
//     rounding error.
//   - exactsum: correctly-rounded summation of float64 and float32 values
//     built on a cascading accumulator of non-overlapping partial sums.
//
// # Accuracy
//
// Every result is the exact mathematical value rounded once to the
// nearest representable value, ties to even. Sums do not depend on the
// order of the inputs.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-exactsum/hwy/contrib/exactsum"
//
//	func Total(data []float64) float64 {
//	    return exactsum.ExactSum(data)
//	}
package contrib
