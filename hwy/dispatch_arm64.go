//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func detectCPUFeatures() {
	// FMADD is part of the base ARMv8 floating-point unit.
	if HasFMA() {
		setFMAMode()
		return
	}
	setScalarMode()
}

// HasFMA reports whether the CPU implements a fused multiply-add.
func HasFMA() bool {
	return cpu.ARM64.HasFP || cpu.ARM64.HasASIMD
}
