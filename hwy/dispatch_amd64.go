//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func detectCPUFeatures() {
	// FMA3 arrived with Haswell; older amd64 parts only guarantee SSE2.
	if cpu.X86.HasFMA {
		setFMAMode()
		return
	}
	setScalarMode()
}

// HasFMA reports whether the CPU implements a fused multiply-add.
func HasFMA() bool {
	return cpu.X86.HasFMA
}
