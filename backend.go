package wproj

import (
	"gonum.org/v1/gonum/blas/cblas64"
)

// VectorBackend supplies the two primitives the accumulation kernels spend
// all their time in: a scaled accumulate over one stencil row during
// gridding, and an unconjugated dot product during degridding.
//
// Implementations must be safe for concurrent use; the parallel kernels
// call them from every worker. Swapping one backend for another may change
// results only within floating-point reordering tolerance.
type VectorBackend interface {
	// Name identifies the backend in diagnostics.
	Name() string

	// Axpy computes y[i] += alpha*x[i] over len(x) elements.
	Axpy(alpha complex64, x, y []complex64)

	// Dotu computes the unconjugated dot product sum(x[i]*y[i]).
	Dotu(x, y []complex64) complex64
}

// LoopBackend is the default pure-Go backend: plain scalar loops, no
// dependencies, fully portable.
type LoopBackend struct{}

func (LoopBackend) Name() string { return "loop" }

func (LoopBackend) Axpy(alpha complex64, x, y []complex64) {
	for i, xv := range x {
		y[i] += alpha * xv
	}
}

func (LoopBackend) Dotu(x, y []complex64) complex64 {
	var sum complex64
	for i, xv := range x {
		sum += xv * y[i]
	}
	return sum
}

// BLASBackend routes the primitives through gonum's complex64 BLAS
// (cblas64.Axpy and cblas64.Dotu), the drop-in equivalent of linking the
// reference kernels against cblas_caxpy and cblas_cdotu_sub.
type BLASBackend struct{}

func (BLASBackend) Name() string { return "blas" }

func (BLASBackend) Axpy(alpha complex64, x, y []complex64) {
	cblas64.Axpy(alpha,
		cblas64.Vector{N: len(x), Inc: 1, Data: x},
		cblas64.Vector{N: len(x), Inc: 1, Data: y})
}

func (BLASBackend) Dotu(x, y []complex64) complex64 {
	return cblas64.Dotu(
		cblas64.Vector{N: len(x), Inc: 1, Data: x},
		cblas64.Vector{N: len(x), Inc: 1, Data: y})
}

// DefaultBackend returns the backend used when a kernel is called with a
// nil VectorBackend.
func DefaultBackend() VectorBackend {
	return LoopBackend{}
}

// SelectBackend resolves a backend by name: "loop", "blas", or "auto".
// "auto" picks the BLAS backend on CPUs with wide vector units and the
// plain loop otherwise.
func SelectBackend(name string) (VectorBackend, error) {
	switch name {
	case "", "loop":
		return LoopBackend{}, nil
	case "blas":
		return BLASBackend{}, nil
	case "auto":
		if Features().HasAVX2 {
			return BLASBackend{}, nil
		}
		return LoopBackend{}, nil
	default:
		return nil, NewInvalidArgError("SelectBackend", "unknown backend "+name)
	}
}
