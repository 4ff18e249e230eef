package wproj

import "math"

// DefaultOverSample is the number of sub-cell phase bins per grid cell.
const DefaultOverSample = 8

// ConvFunc holds the oversampled w-projection convolution function.
//
// Values is a flattened 5-D table indexed by
// (i, j, osi, osj, k) = (spatial-offset-x, spatial-offset-y,
// oversample-bin-x, oversample-bin-y, w-plane), innermost first:
//
//	cind = i + sSize*(j + sSize*(osi + overSample*(osj + overSample*k)))
//
// where sSize = 2*Support+1. The table is built once by NewConvFunc and
// must not be mutated afterwards; the accumulation kernels read it
// concurrently without synchronization.
type ConvFunc struct {
	Support    int     // stencil half-width; full width is 2*Support+1
	OverSample int     // sub-cell bins per axis
	WSize      int     // number of w-planes
	WCellSize  float64 // size of one w-plane cell in wavelengths
	Values     []complex64
}

// StencilSize returns the full stencil width 2*Support+1.
func (c *ConvFunc) StencilSize() int {
	return 2*c.Support + 1
}

// PlaneSize returns the number of table entries covered by one
// (oversample-bin, w-plane) sub-block, i.e. StencilSize squared.
func (c *ConvFunc) PlaneSize() int {
	s := c.StencilSize()
	return s * s
}

// NewConvFunc builds the w-projection convolution function.
//
// freq is the per-channel frequency list in inverse wavelengths, cellSize
// the grid cell size in wavelengths, baseline the maximum baseline length,
// and wSize the number of w-planes in the lookup table.
//
// The support is derived from the configuration, not chosen by the caller:
//
//	support = int(1.5 * sqrt(|baseline| * cellSize * freq[0]) / cellSize)
//
// This heuristic is inherited from the original ASKAP benchmark and is
// reproduced exactly, including the truncating conversion.
//
// The true kernel would be the convolution of the w-dependent Fresnel term
// with an anti-aliasing function, evaluated by Fourier transform. The
// table built here uses the standard closed-form approximation instead:
// cos(r2/(w*fScale)) on non-zero planes and exp(-r2) on the w=0 plane.
// After filling, the table is normalized so that the total magnitude sum
// equals wSize*overSample^2, making kernel energy comparable across
// configurations.
func NewConvFunc(freq []float64, cellSize, baseline float64, wSize int) (*ConvFunc, error) {
	if len(freq) == 0 {
		return nil, NewInvalidArgError("NewConvFunc", "empty frequency list")
	}
	if cellSize <= 0 {
		return nil, NewInvalidArgError("NewConvFunc", "cellSize must be positive")
	}
	if wSize <= 0 {
		return nil, NewInvalidArgError("NewConvFunc", "wSize must be positive")
	}

	support := int(1.5 * math.Sqrt(math.Abs(baseline)*cellSize*freq[0]) / cellSize)
	if support < 1 {
		return nil, NewInvalidArgError("NewConvFunc", "derived support is zero; baseline or cell size too small")
	}

	cf := &ConvFunc{
		Support:    support,
		OverSample: DefaultOverSample,
		WSize:      wSize,
		WCellSize:  2 * baseline * freq[0] / float64(wSize),
	}

	sSize := cf.StencilSize()
	over := cf.OverSample
	cCenter := (sSize - 1) / 2
	cf.Values = make([]complex64, sSize*sSize*over*over*wSize)

	for k := 0; k < wSize; k++ {
		w := float64(k - wSize/2)
		fScale := math.Sqrt(math.Abs(w)*cf.WCellSize*freq[0]) / cellSize

		for osj := 0; osj < over; osj++ {
			for osi := 0; osi < over; osi++ {
				for j := 0; j < sSize; j++ {
					dj := float64(j-cCenter) + float64(osj)/float64(over)
					j2 := dj * dj

					for i := 0; i < sSize; i++ {
						di := float64(i-cCenter) + float64(osi)/float64(over)
						r2 := j2 + di*di
						cind := i + sSize*(j+sSize*(osi+over*(osj+over*k)))

						if w != 0.0 {
							cf.Values[cind] = complex(float32(math.Cos(r2/(w*fScale))), 0)
						} else {
							cf.Values[cind] = complex(float32(math.Exp(-r2)), 0)
						}
					}
				}
			}
		}
	}

	cf.normalize()
	return cf, nil
}

// normalize scales the table so that the sum of coefficient magnitudes
// equals WSize*OverSample^2. The sum is accumulated in float64; the table
// is large enough that a float32 accumulator would drift visibly.
func (c *ConvFunc) normalize() {
	var sum float64
	for _, v := range c.Values {
		sum += math.Abs(float64(real(v)))
	}
	scale := float32(float64(c.WSize*c.OverSample*c.OverSample) / sum)
	for i := range c.Values {
		c.Values[i] *= complex(scale, 0)
	}
}

// MagnitudeSum returns the sum of coefficient magnitudes over the whole
// table, accumulated in float64.
func (c *ConvFunc) MagnitudeSum() float64 {
	var sum float64
	for _, v := range c.Values {
		sum += math.Abs(float64(real(v)))
	}
	return sum
}
