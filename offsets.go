package wproj

import "math"

// Offsets holds the precomputed lookup data for one dataset: for every
// (sample, channel) pair, the integer grid anchor (IU, IV) and the offset
// COffset of the applicable sub-block of the convolution-function table.
// All three slices have length nSamples*nChan, sample-major.
//
// Precomputing these means the accumulation kernels never touch world
// coordinates or the shape of the convolution function; they walk the grid
// and the table with plain index arithmetic. The ordering of entries is
// whatever the dataset ordering is; some presorting might be advantageous.
type Offsets struct {
	IU      []int
	IV      []int
	COffset []int
}

// Len returns the number of (sample, channel) entries.
func (o *Offsets) Len() int {
	return len(o.IU)
}

// ComputeOffsets maps every (sample, channel) pair to its grid anchor and
// convolution-table offset.
//
// u, v, w are per-sample coordinates in the same physical units as the
// baseline; freq is the per-channel frequency list; gSize is the side
// length of the target grid. cf supplies the support, oversample factor,
// w-plane count and w cell size the table was built with: the same
// ConvFunc must be used here and in the accumulation kernels.
//
// Anchors are found by scaling the coordinate by frequency over cell size
// and rounding toward negative infinity. Truncation toward zero would
// misplace the anchor by one cell for negative scaled coordinates. The
// fractional remainder picks the oversample bin, and the anchor is then
// recentered by gSize/2. The w coordinate selects a plane via
// wSize/2 + floor(wScaled), with no fractional oversampling in w.
func ComputeOffsets(u, v, w, freq []float64, cellSize float64, cf *ConvFunc, gSize int) (*Offsets, error) {
	nSamples := len(u)
	if len(v) != nSamples || len(w) != nSamples {
		return nil, NewInvalidArgError("ComputeOffsets", "u, v, w length mismatch")
	}
	if len(freq) == 0 {
		return nil, NewInvalidArgError("ComputeOffsets", "empty frequency list")
	}
	if cellSize <= 0 {
		return nil, NewInvalidArgError("ComputeOffsets", "cellSize must be positive")
	}
	if gSize <= 0 {
		return nil, NewInvalidArgError("ComputeOffsets", "gSize must be positive")
	}

	nChan := len(freq)
	sSize := cf.StencilSize()
	over := cf.OverSample

	off := &Offsets{
		IU:      make([]int, nSamples*nChan),
		IV:      make([]int, nSamples*nChan),
		COffset: make([]int, nSamples*nChan),
	}

	for i := 0; i < nSamples; i++ {
		for ch := 0; ch < nChan; ch++ {
			dind := i*nChan + ch

			uScaled := freq[ch] * u[i] / cellSize
			iu := int(uScaled)
			if uScaled < float64(iu) {
				iu--
			}
			fracu := int(float64(over) * (uScaled - float64(iu)))
			off.IU[dind] = iu + gSize/2

			vScaled := freq[ch] * v[i] / cellSize
			iv := int(vScaled)
			if vScaled < float64(iv) {
				iv--
			}
			fracv := int(float64(over) * (vScaled - float64(iv)))
			off.IV[dind] = iv + gSize/2

			wScaled := freq[ch] * w[i] / cf.WCellSize
			woff := cf.WSize/2 + int(math.Floor(wScaled))
			off.COffset[dind] = sSize * sSize * (fracu + over*(fracv+over*woff))
		}
	}

	return off, nil
}

// validate checks that every entry addresses grid cells and table
// coefficients that exist. The accumulation kernels call this once before
// entering their unchecked hot loops; a violation means the configuration
// handed to ComputeOffsets does not match the grid or the ConvFunc.
//
// The stencil touches columns [iu-support, iu+support] and rows
// [iv, iv+2*support] of the grid, and the table sub-block
// [cOffset, cOffset+sSize^2).
func (o *Offsets) validate(op string, cf *ConvFunc, gSize, nData, nValues int) error {
	if o.Len() != nData {
		return NewInvalidArgError(op, "offset table and data length mismatch")
	}
	if len(o.IV) != o.Len() || len(o.COffset) != o.Len() {
		return NewInvalidArgError(op, "offset table slices have uneven lengths")
	}

	support := cf.Support
	sSize := cf.StencilSize()
	for dind := range o.IU {
		iu, iv, cind := o.IU[dind], o.IV[dind], o.COffset[dind]
		if iu < support || iu+support >= gSize {
			return NewBoundsError(op, "iu within support of grid edge")
		}
		if iv < 0 || iv+2*support >= gSize {
			return NewBoundsError(op, "iv stencil rows outside grid")
		}
		if cind < 0 || cind+sSize*sSize > nValues {
			return NewBoundsError(op, "cOffset outside convolution-function table")
		}
	}
	return nil
}
