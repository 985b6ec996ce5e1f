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

// Command exactsum sums floating-point values exactly and checks the
// results against an arbitrary-precision reference.
//
// Usage:
//
//	exactsum sum [flags] [--] [values...]
//	exactsum check [flags]
//
// Values are read from the arguments, from --file, or from standard input,
// separated by whitespace or commas. Put negative values after "--" so
// they are not taken for flags.
//
// Environment:
//
//	EXACTSUM_ORACLE_PREC   oracle working precision in bits (default 4096)
//	EXACTSUM_PERMUTATIONS  shuffled re-summations (default 0 for sum, 1 for check)
//	EXACTSUM_LOG_LEVEL     debug, info, warn or error (default info)
//	HWY_NO_FMA             set to 1 to use the split-based TwoProduct kernel
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
