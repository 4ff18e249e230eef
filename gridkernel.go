package wproj

import (
	"runtime"
	"sync"
)

// GridSerial scatters every sample onto the grid, one stencil row at a
// time: grid[cell] += data[dind] * C[coeff] over the (2*support+1)^2
// stencil anchored at (iu, iv). data holds one value per (sample, channel)
// entry of the offset table.
//
// The offset table is validated against the grid and the convolution
// function before the hot loop; the loop itself performs no bounds checks.
// A nil backend selects the default pure-loop implementation.
func GridSerial(data []complex64, cf *ConvFunc, off *Offsets, g *Grid, be VectorBackend) error {
	if err := off.validate("GridSerial", cf, g.Size, len(data), len(cf.Values)); err != nil {
		return err
	}
	if be == nil {
		be = DefaultBackend()
	}

	support := cf.Support
	sSize := cf.StencilSize()
	gSize := g.Size
	grid := g.Cells
	C := cf.Values

	for dind := range data {
		// The actual grid point
		gind := off.IU[dind] + gSize*off.IV[dind] - support
		// The convolution-function point from which we offset
		cind := off.COffset[dind]
		d := data[dind]

		for suppv := 0; suppv < sSize; suppv++ {
			be.Axpy(d, C[cind:cind+sSize], grid[gind:gind+sSize])
			gind += gSize
			cind += sSize
		}
	}
	return nil
}

// GridParallel is the multi-worker variant of GridSerial. It returns the
// number of workers used.
//
// Workers partition the grid's rows: the worker owning a stencil row is
// determined by that row's absolute grid row modulo the worker count,
// seeded from the sample's iv. Every worker scans the whole sample list
// but accumulates only the rows it owns, so each grid cell is written by
// exactly one worker and the hot path needs no locks or atomics. The
// redundant metadata scan is cheap next to the accumulation itself.
func GridParallel(data []complex64, cf *ConvFunc, off *Offsets, g *Grid, be VectorBackend) (int, error) {
	if err := off.validate("GridParallel", cf, g.Size, len(data), len(cf.Values)); err != nil {
		return 0, err
	}
	if be == nil {
		be = DefaultBackend()
	}

	nWorkers := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nWorkers)
	for tid := 0; tid < nWorkers; tid++ {
		go func(tid int) {
			defer wg.Done()
			gridWorker(tid, nWorkers, data, cf, off, g, be)
		}(tid)
	}
	wg.Wait()

	return nWorkers, nil
}

// gridWorker accumulates the stencil rows owned by worker tid. The row
// counter starts at iv mod nWorkers and rotates once per stencil row, so
// ownership follows the absolute grid row regardless of the anchor.
func gridWorker(tid, nWorkers int, data []complex64, cf *ConvFunc, off *Offsets, g *Grid, be VectorBackend) {
	support := cf.Support
	sSize := cf.StencilSize()
	gSize := g.Size
	grid := g.Cells
	C := cf.Values

	for dind := range data {
		gind := off.IU[dind] + gSize*off.IV[dind] - support
		cind := off.COffset[dind]
		d := data[dind]
		row := off.IV[dind] % nWorkers

		for suppv := 0; suppv < sSize; suppv++ {
			if row == tid {
				be.Axpy(d, C[cind:cind+sSize], grid[gind:gind+sSize])
			}
			gind += gSize
			cind += sSize
			row++
			if row >= nWorkers {
				row = 0
			}
		}
	}
}
