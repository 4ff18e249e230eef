package wproj

import "fmt"

// Mismatch describes the first cell at which two kernel outputs disagree.
type Mismatch struct {
	Index    int
	Expected float32
	Actual   float32
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("expected %g got %g at index %d", m.Expected, m.Actual, m.Index)
}

// CompareValues diffs two complex64 slices on the real component within
// tol, returning nil on agreement or the first mismatch found. A length
// difference is reported as a mismatch at index -1.
func CompareValues(expected, actual []complex64, tol float32) *Mismatch {
	if len(expected) != len(actual) {
		return &Mismatch{Index: -1}
	}
	for i := range expected {
		if !RealNearEqual(expected[i], actual[i], tol) {
			return &Mismatch{
				Index:    i,
				Expected: real(expected[i]),
				Actual:   real(actual[i]),
			}
		}
	}
	return nil
}

// VerifyGrids checks a parallel gridding result against the serial
// reference. It returns a verification error carrying the first
// mismatching cell, or nil when the grids agree.
func VerifyGrids(expected, actual *Grid, tol float32) error {
	if expected.Size != actual.Size {
		return NewVerifyError("VerifyGrids", "grid sizes differ")
	}
	if m := CompareValues(expected.Cells, actual.Cells, tol); m != nil {
		return NewVerifyError("VerifyGrids", m.String())
	}
	return nil
}

// VerifyData checks a parallel degridding result against the serial
// reference.
func VerifyData(expected, actual []complex64, tol float32) error {
	if len(expected) != len(actual) {
		return NewVerifyError("VerifyData", "data vector sizes differ")
	}
	if m := CompareValues(expected, actual, tol); m != nil {
		return NewVerifyError("VerifyData", m.String())
	}
	return nil
}
