// Package wproj tolerance-based comparison of kernel outputs.
package wproj

import "math"

// DefaultVerifyTol is the real-part tolerance used when diffing serial
// against parallel kernel outputs.
const DefaultVerifyTol = 1e-5

// RealNearEqual reports whether the real parts of two complex64 values
// agree within tol. The kernels fill the imaginary parts from the same
// accumulation, so comparing real parts is sufficient to catch partition
// or ordering bugs.
func RealNearEqual(a, b complex64, tol float32) bool {
	return float32(math.Abs(float64(real(a)-real(b)))) <= tol
}
