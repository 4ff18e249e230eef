package wproj

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// degridChunk is the number of (sample, channel) entries a parallel
// degridding worker claims at a time. Large enough to amortise the claim,
// small enough to smooth out per-sample cache variance.
const degridChunk = 32

// DegridSerial gathers each sample's value back from the grid:
// data[dind] = sum over the stencil of grid[cell] * C[coeff]. Any prior
// contents of data are overwritten. The grid is not mutated.
//
// Validation and backend selection follow GridSerial.
func DegridSerial(g *Grid, cf *ConvFunc, off *Offsets, data []complex64, be VectorBackend) error {
	if err := off.validate("DegridSerial", cf, g.Size, len(data), len(cf.Values)); err != nil {
		return err
	}
	if be == nil {
		be = DefaultBackend()
	}

	for dind := range data {
		data[dind] = degridOne(dind, g, cf, off, be)
	}
	return nil
}

// DegridParallel is the multi-worker variant of DegridSerial. It returns
// the number of workers used.
//
// Each output slot is an independent reduction over read-only shared data,
// so there are no write conflicts to manage; workers claim chunks of
// entries from a shared cursor until the list is exhausted.
func DegridParallel(g *Grid, cf *ConvFunc, off *Offsets, data []complex64, be VectorBackend) (int, error) {
	if err := off.validate("DegridParallel", cf, g.Size, len(data), len(cf.Values)); err != nil {
		return 0, err
	}
	if be == nil {
		be = DefaultBackend()
	}

	nWorkers := runtime.GOMAXPROCS(0)
	n := int64(len(data))
	var cursor int64

	var wg sync.WaitGroup
	wg.Add(nWorkers)
	for tid := 0; tid < nWorkers; tid++ {
		go func() {
			defer wg.Done()
			for {
				start := atomic.AddInt64(&cursor, degridChunk) - degridChunk
				if start >= n {
					return
				}
				end := start + degridChunk
				if end > n {
					end = n
				}
				for dind := start; dind < end; dind++ {
					data[dind] = degridOne(int(dind), g, cf, off, be)
				}
			}
		}()
	}
	wg.Wait()

	return nWorkers, nil
}

// degridOne reduces one (sample, channel) entry over its stencil.
func degridOne(dind int, g *Grid, cf *ConvFunc, off *Offsets, be VectorBackend) complex64 {
	support := cf.Support
	sSize := cf.StencilSize()
	gSize := g.Size
	grid := g.Cells
	C := cf.Values

	// The grid point from which we offset
	gind := off.IU[dind] + gSize*off.IV[dind] - support
	// The convolution-function point from which we offset
	cind := off.COffset[dind]

	var sum complex64
	for suppv := 0; suppv < sSize; suppv++ {
		sum += be.Dotu(grid[gind:gind+sSize], C[cind:cind+sSize])
		gind += gSize
		cind += sSize
	}
	return sum
}
