// Package eft provides error-free transformations (EFTs) for float64
// arithmetic.
//
// An error-free transformation returns the rounded result of an operation
// together with the exact rounding error as a second float64, so that no
// information is lost:
//
//	s, e := eft.TwoSum(a, b)      // a + b == s + e exactly
//	p, e := eft.TwoProduct(a, b)  // a * b == p + e exactly
//
// # Functions
//
//   - TwoSum(a, b) - Knuth/Møller two-sum, valid for any operand order
//   - FastTwoSum(a, b) - Dekker's two-sum, requires |a| >= |b|
//   - Split(a) - Veltkamp split into two 26-bit halves
//   - TwoProduct(a, b) - exact product error
//
// # Dispatch
//
// TwoProduct has two kernels. On CPUs with a fused multiply-add (see
// hwy.CurrentLevel) the error is a single math.FMA. Otherwise Dekker's
// algorithm is used on Split halves. Both kernels return identical results;
// HWY_NO_FMA=1 selects the Dekker kernel.
//
// # Assumptions
//
// All functions assume round-to-nearest-even, the only rounding mode Go
// exposes. The results are exact as long as the rounded result is finite
// and, for TwoProduct, the error does not underflow below the subnormal
// range. If the rounded result overflows, the returned error is meaningless
// (0 or NaN).
package eft
