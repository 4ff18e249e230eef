package wproj

import "testing"

// testConfig bundles one kernel configuration for tests. The defaults keep
// the derived support small so full gridding runs stay fast.
type testConfig struct {
	nSamples int
	nChan    int
	wSize    int
	gSize    int
	cellSize float64
	baseline float64
	seed     uint64
}

func defaultConfig() testConfig {
	return testConfig{
		nSamples: 100,
		nChan:    1,
		wSize:    17,
		gSize:    384,
		cellSize: 5.0,
		baseline: 200.0,
		seed:     1,
	}
}

// buildFixture synthesizes a dataset and computes the convolution function
// and offset table for cfg, failing the test on any setup error.
func buildFixture(t testing.TB, cfg testConfig) (*Dataset, *ConvFunc, *Offsets) {
	t.Helper()

	rng := NewLCG(cfg.seed)
	ds := SynthDataset(rng, cfg.nSamples, cfg.nChan, cfg.baseline)

	cf, err := NewConvFunc(ds.Freq, cfg.cellSize, cfg.baseline, cfg.wSize)
	if err != nil {
		t.Fatalf("NewConvFunc failed: %v", err)
	}

	off, err := ComputeOffsets(ds.U, ds.V, ds.W, ds.Freq, cfg.cellSize, cf, cfg.gSize)
	if err != nil {
		t.Fatalf("ComputeOffsets failed: %v", err)
	}

	return ds, cf, off
}

// gridSerialOrFail runs the serial gridder on a fresh grid.
func gridSerialOrFail(t testing.TB, cfg testConfig, ds *Dataset, cf *ConvFunc, off *Offsets, be VectorBackend) *Grid {
	t.Helper()
	g := NewGrid(cfg.gSize)
	if err := GridSerial(ds.Data, cf, off, g, be); err != nil {
		t.Fatalf("GridSerial failed: %v", err)
	}
	return g
}
