package main

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"k8s.io/klog/v2"
)

// physicalCores reports the physical core count, falling back to logical
// cores and then to 1.
func physicalCores() int {
	for _, logical := range []bool{false, true} {
		n, err := cpu.Counts(logical)
		if err == nil && n > 0 {
			return n
		}
		if err != nil {
			klog.V(1).Infof("cpu.Counts(logical=%v): %v", logical, err)
		}
	}

	return 1
}

// autoProcs returns the largest P = Q² <= cores with n % Q == 0.
func autoProcs(n, cores int) (int, error) {
	if n <= 0 {
		return 0, errors.Errorf("autoProcs: matrix order %d", n)
	}
	if cores < 1 {
		cores = 1
	}
	for q := int(math.Sqrt(float64(cores))); q > 1; q-- {
		if q*q <= cores && n%q == 0 {
			return q * q, nil
		}
	}

	return 1, nil
}
