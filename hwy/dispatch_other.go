//go:build !amd64 && !arm64

package hwy

func detectCPUFeatures() {
	// math.FMA still works here, but it may be a software routine, so the
	// split-based kernels are preferred.
	setScalarMode()
}

// HasFMA returns false on architectures without detection support.
func HasFMA() bool {
	return false
}
