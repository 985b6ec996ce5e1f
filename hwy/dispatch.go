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

// Package hwy reports the floating-point capabilities of the host CPU and
// the dispatch level used to select error-free transformation kernels.
//
// The level is decided once at init. Setting HWY_NO_FMA=1 in the environment
// forces the portable scalar level, which is useful for testing the
// fallback kernels on hardware that has FMA.
package hwy

import "os"

// DispatchLevel identifies the class of kernels selected for this process.
type DispatchLevel int

const (
	// DispatchScalar uses only correctly rounded add, sub and mul.
	DispatchScalar DispatchLevel = iota
	// DispatchFMA additionally relies on a hardware fused multiply-add.
	DispatchFMA
)

// String returns the lowercase name of the level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchFMA:
		return "fma"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentName  string
)

// CurrentLevel returns the dispatch level chosen at init.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a short description of the detected level, e.g.
// "fma" or "scalar".
func CurrentName() string {
	return currentName
}

// NoFMAEnv reports whether HWY_NO_FMA is set to a non-empty value other
// than "0".
func NoFMAEnv() bool {
	v := os.Getenv("HWY_NO_FMA")
	return v != "" && v != "0"
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = "scalar"
}

func setFMAMode() {
	currentLevel = DispatchFMA
	currentName = "fma"
}

func init() {
	if NoFMAEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}
