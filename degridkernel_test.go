package wproj

import (
	"errors"
	"testing"
)

// Serial and parallel degridding must agree within the verification
// tolerance across sample counts, including ones that don't divide the
// scheduling chunk evenly.
func TestDegridParallelMatchesSerial(t *testing.T) {
	sizes := []int{0, 1, 31, 32, 33, 1000}
	if !testing.Short() {
		sizes = append(sizes, 100000)
	}

	for _, n := range sizes {
		cfg := defaultConfig()
		cfg.nSamples = n
		cfg.seed = uint64(2*n + 1)
		ds, cf, off := buildFixture(t, cfg)

		grid := gridSerialOrFail(t, cfg, ds, cf, off, nil)

		serial := make([]complex64, len(ds.Data))
		if err := DegridSerial(grid, cf, off, serial, nil); err != nil {
			t.Fatalf("n=%d: DegridSerial failed: %v", n, err)
		}

		parallel := make([]complex64, len(ds.Data))
		nThreads, err := DegridParallel(grid, cf, off, parallel, nil)
		if err != nil {
			t.Fatalf("n=%d: DegridParallel failed: %v", n, err)
		}
		if nThreads < 1 {
			t.Fatalf("n=%d: reported %d threads", n, nThreads)
		}

		if err := VerifyData(serial, parallel, DefaultVerifyTol); err != nil {
			t.Errorf("n=%d: %v", n, err)
		}
	}
}

// Degridding must not mutate the grid.
func TestDegridGridReadOnly(t *testing.T) {
	cfg := defaultConfig()
	ds, cf, off := buildFixture(t, cfg)

	grid := gridSerialOrFail(t, cfg, ds, cf, off, nil)
	before := grid.Clone()

	out := make([]complex64, len(ds.Data))
	if err := DegridSerial(grid, cf, off, out, nil); err != nil {
		t.Fatalf("DegridSerial failed: %v", err)
	}
	if _, err := DegridParallel(grid, cf, off, out, nil); err != nil {
		t.Fatalf("DegridParallel failed: %v", err)
	}

	for i := range before.Cells {
		if grid.Cells[i] != before.Cells[i] {
			t.Fatalf("grid cell %d mutated by degridding", i)
		}
	}
}

// Degridding overwrites output slots: two calls against different grids
// must yield the second grid's result only, never an accumulation.
func TestDegridOverwrites(t *testing.T) {
	cfg := defaultConfig()
	ds, cf, off := buildFixture(t, cfg)

	gridA := NewGrid(cfg.gSize)
	gridA.Fill(1.0)
	gridB := NewGrid(cfg.gSize)
	gridB.Fill(2.0)

	twice := make([]complex64, len(ds.Data))
	if err := DegridSerial(gridA, cf, off, twice, nil); err != nil {
		t.Fatalf("DegridSerial on gridA failed: %v", err)
	}
	if err := DegridSerial(gridB, cf, off, twice, nil); err != nil {
		t.Fatalf("DegridSerial on gridB failed: %v", err)
	}

	fresh := make([]complex64, len(ds.Data))
	if err := DegridSerial(gridB, cf, off, fresh, nil); err != nil {
		t.Fatalf("DegridSerial on fresh output failed: %v", err)
	}

	for i := range fresh {
		if twice[i] != fresh[i] {
			t.Fatalf("slot %d: repeated degridding accumulated: %v vs %v", i, twice[i], fresh[i])
		}
	}
}

func TestDegridBoundsValidation(t *testing.T) {
	cfg := defaultConfig()
	ds, cf, off := buildFixture(t, cfg)

	out := make([]complex64, len(ds.Data))
	err := DegridSerial(NewGrid(2*cf.Support), cf, off, out, nil)
	if err == nil {
		t.Fatal("expected bounds error for undersized grid")
	}
	var kerr *KernelError
	if !errors.As(err, &kerr) || kerr.Type != ErrTypeBounds {
		t.Errorf("expected Bounds KernelError, got %v", err)
	}
}

// Both backends must produce the same degridded values within rounding
// tolerance.
func TestDegridBackendParity(t *testing.T) {
	cfg := defaultConfig()
	ds, cf, off := buildFixture(t, cfg)

	grid := gridSerialOrFail(t, cfg, ds, cf, off, nil)

	loop := make([]complex64, len(ds.Data))
	if err := DegridSerial(grid, cf, off, loop, LoopBackend{}); err != nil {
		t.Fatalf("DegridSerial(loop) failed: %v", err)
	}

	blas := make([]complex64, len(ds.Data))
	if err := DegridSerial(grid, cf, off, blas, BLASBackend{}); err != nil {
		t.Fatalf("DegridSerial(blas) failed: %v", err)
	}

	if err := VerifyData(loop, blas, DefaultVerifyTol); err != nil {
		t.Error(err)
	}
}
