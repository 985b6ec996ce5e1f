// Package exactsum computes correctly-rounded sums of float64 values.
//
// Ordinary left-to-right addition rounds after every step, so its result
// depends on the order of the inputs and can lose all significant digits
// to cancellation. The functions in this package return the exact
// mathematical sum of their inputs rounded once to the nearest float64,
// which is the same for every permutation of the inputs.
//
// # Functions
//
//   - ExactSum(values []float64) float64 - correctly-rounded sum
//   - ExactSum32(values []float32) float32 - correctly-rounded float32 sum
//   - ExactDot(a, b []float64) float64 - correctly-rounded dot product
//   - Classify(values []float64) Class - special-value pre-scan
//   - Analyze(values []float64) Report - sum plus diagnostics
//
// Accumulator provides the same result for values that arrive one at a
// time, and accumulators can be merged.
//
// # Algorithm
//
// The sum is computed in three stages:
//  1. A single pre-scan classifies NaN and infinities. Any NaN, or both
//     signs of infinity, yield NaN; one sign of infinity yields that
//     infinity. The scan never stops early, so the outcome cannot depend
//     on which special value comes first.
//  2. Each finite addend is cascaded through a collection of parts with
//     eft.TwoSum. Every step re-expresses part+residual as a new
//     (part, residual) pair without loss; a nonzero leftover becomes a new
//     part. The exact sum of the parts always equals the exact sum of the
//     addends.
//  3. The parts are distilled, last part first, into a non-overlapping
//     expansion, which is rounded from its largest component down with a
//     correction for results that fall exactly half way between two
//     doubles.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-exactsum/hwy/contrib/exactsum"
//
//	values := []float64{1, 1e100, 1, -1e100}
//
//	var naive float64
//	for _, v := range values {
//	    naive += v // 0 after the last step
//	}
//	exact := exactsum.ExactSum(values) // 2
//
// # Limitations
//
// If the running sum of finite addends overflows, the result is the
// infinity of the overflowing intermediate even when the exact total would
// have been finite. Analyze reports this with FlagOverflow.
package exactsum
