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

// Package main provides a diagnostic tool to print the CPU features and
// kernel selection used by the exact summation packages.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-exactsum/hwy"
	"github.com/ajroetker/go-exactsum/hwy/contrib/eft"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Printf("Dispatch name: %s\n", hwy.CurrentName())
	fmt.Printf("HasFMA: %v\n", hwy.HasFMA())
	fmt.Printf("HWY_NO_FMA set: %v\n", hwy.NoFMAEnv())
	fmt.Printf("TwoProduct kernel: %s\n", eft.KernelName())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasFP:    %v (Floating point, fused multiply-add)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMD: %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFPHP:  %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasSVE:   %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasFMA:   %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasSSE2:  %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41: %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:   %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:  %v\n", cpu.X86.HasAVX2)
}
