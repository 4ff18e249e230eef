package wproj

import "math"

// LCG is the K&R linear congruential generator used to synthesize
// visibility datasets. It is an explicit, caller-owned object: seed one at
// construction and pass it to the generation routines, so runs are
// reproducible and generators never share state.
type LCG struct {
	next uint64
}

// NewLCG returns a generator seeded with seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{next: seed}
}

// Int returns a pseudo-random integer in [0, 2147483647).
func (r *LCG) Int() int {
	r.next = r.next*1103515245 + 12345
	return int(uint32(r.next/65536) % math.MaxInt32)
}

// Float64 returns a pseudo-random value in [0, 1).
func (r *LCG) Float64() float64 {
	return float64(r.Int()) / float64(math.MaxInt32)
}

// Dataset is a synthetic visibility set: one (u, v, w) coordinate per
// sample and one complex value per sample per channel, with the
// per-channel frequency list in inverse wavelengths.
type Dataset struct {
	U, V, W []float64
	Freq    []float64
	Data    []complex64
}

// SynthDataset generates nSamples visibilities with coordinates uniform in
// [-baseline/2, baseline/2) and unit data values, plus an nChan-channel
// frequency ramp descending from 1.4 GHz.
func SynthDataset(rng *LCG, nSamples, nChan int, baseline float64) *Dataset {
	ds := &Dataset{
		U:    make([]float64, nSamples),
		V:    make([]float64, nSamples),
		W:    make([]float64, nSamples),
		Freq: make([]float64, nChan),
		Data: make([]complex64, nSamples*nChan),
	}

	for i := 0; i < nSamples; i++ {
		ds.U[i] = baseline*rng.Float64() - baseline/2
		ds.V[i] = baseline*rng.Float64() - baseline/2
		ds.W[i] = baseline*rng.Float64() - baseline/2

		for ch := 0; ch < nChan; ch++ {
			ds.Data[i*nChan+ch] = 1.0
		}
	}

	for ch := 0; ch < nChan; ch++ {
		ds.Freq[ch] = (1.4e9 - 2.0e5*float64(ch)/float64(nChan)) / 2.998e8
	}

	return ds
}
