// Command tconvolve benchmarks and cross-verifies the serial and parallel
// gridding/degridding kernels on a synthetic visibility dataset.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/gridworks/wproj"
)

// Fixed configuration, matching the reference benchmark. Changing these
// changes the derived support and the verification workload.
const (
	gSize    = 4096   // size of output grid in pixels per axis
	baseline = 2000.0 // maximum baseline in meters
)

func main() {
	var (
		nSamples = flag.Int("n", 160000, "number of data samples")
		wSize    = flag.Int("w", 33, "number of lookup planes in w projection")
		nChan    = flag.Int("c", 1, "number of spectral channels")
		fovScale = flag.Float64("f", 1.0, "reduce the field of view by this factor (reduces the kernel size)")
		phase    = flag.String("phase", "all", "which kernels to run: grid, degrid, or all")
		serial   = flag.Bool("serial", true, "run the serial kernel variants")
		parallel = flag.Bool("parallel", true, "run the parallel kernel variants")
		backend  = flag.String("backend", "loop", "vector backend: loop, blas, or auto")
	)
	flag.Parse()

	if *nSamples <= 0 || *wSize <= 0 || *nChan <= 0 || *fovScale <= 0 {
		flag.Usage()
		os.Exit(1)
	}

	runGrid := *phase == "all" || *phase == "grid"
	runDegrid := *phase == "all" || *phase == "degrid"
	if !runGrid && !runDegrid {
		fmt.Fprintf(os.Stderr, "unknown phase %q\n", *phase)
		flag.Usage()
		os.Exit(1)
	}
	if !*serial && !*parallel {
		fmt.Fprintln(os.Stderr, "nothing to run: both -serial and -parallel disabled")
		flag.Usage()
		os.Exit(1)
	}
	// Cross-verification needs both variants' outputs.
	verify := *serial && *parallel

	be, err := wproj.SelectBackend(*backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}

	cellSize := 5.0 * *fovScale // cell size of output grid in wavelengths

	fmt.Printf("nSamples = %d\n", *nSamples)
	fmt.Printf("CPU: %d cores (%s)\n", runtime.NumCPU(), wproj.Features())
	fmt.Printf("Vector backend: %s\n", be.Name())

	rng := wproj.NewLCG(1)
	ds := wproj.SynthDataset(rng, *nSamples, *nChan, baseline)

	fmt.Println("Initializing W projection convolution function")
	cf, err := wproj.NewConvFunc(ds.Freq, cellSize, baseline, *wSize)
	if err != nil {
		log.Fatal(err)
	}

	sSize := cf.StencilSize()
	fmt.Printf("FoV = %g deg\n", 180/math.Pi/cellSize)
	fmt.Printf("Support = %d pixels\n", cf.Support)
	fmt.Printf("W cellsize = %g wavelengths\n", cf.WCellSize)
	fmt.Printf("Size of convolution function = %d MB\n", len(cf.Values)*8/(1024*1024))
	fmt.Printf("Shape of convolution function = [%d, %d, %d, %d, %d]\n",
		sSize, sSize, cf.OverSample, cf.OverSample, cf.WSize)

	off, err := wproj.ComputeOffsets(ds.U, ds.V, ds.W, ds.Freq, cellSize, cf, gSize)
	if err != nil {
		log.Fatal(err)
	}

	griddings := float64(*nSamples**nChan) * float64(sSize*sSize)

	if runGrid {
		serialGrid := wproj.NewGrid(gSize)
		if *serial {
			fmt.Println("+++++ Forward processing (serial) +++++")
			start := time.Now()
			if err := wproj.GridSerial(ds.Data, cf, off, serialGrid, be); err != nil {
				log.Fatal(err)
			}
			report(time.Since(start), len(ds.Data), sSize, griddings, 0)
		}

		parallelGrid := wproj.NewGrid(gSize)
		if *parallel {
			fmt.Println("+++++ Forward processing (parallel) +++++")
			start := time.Now()
			nThreads, err := wproj.GridParallel(ds.Data, cf, off, parallelGrid, be)
			if err != nil {
				log.Fatal(err)
			}
			report(time.Since(start), len(ds.Data), sSize, griddings, nThreads)
		}

		if verify {
			fmt.Print("Verifying result...")
			if err := wproj.VerifyGrids(serialGrid, parallelGrid, wproj.DefaultVerifyTol); err != nil {
				fmt.Printf("Fail (%v)\n", err)
				os.Exit(1)
			}
			fmt.Println("Pass")
		}
	}

	if runDegrid {
		grid := wproj.NewGrid(gSize)
		grid.Fill(1.0)

		serialOut := make([]complex64, len(ds.Data))
		if *serial {
			fmt.Println("+++++ Reverse processing (serial) +++++")
			start := time.Now()
			if err := wproj.DegridSerial(grid, cf, off, serialOut, be); err != nil {
				log.Fatal(err)
			}
			report(time.Since(start), len(ds.Data), sSize, griddings, 0)
		}

		parallelOut := make([]complex64, len(ds.Data))
		if *parallel {
			fmt.Println("+++++ Reverse processing (parallel) +++++")
			start := time.Now()
			nThreads, err := wproj.DegridParallel(grid, cf, off, parallelOut, be)
			if err != nil {
				log.Fatal(err)
			}
			report(time.Since(start), len(ds.Data), sSize, griddings, nThreads)
		}

		if verify {
			fmt.Print("Verifying result...")
			if err := wproj.VerifyData(serialOut, parallelOut, wproj.DefaultVerifyTol); err != nil {
				fmt.Printf("Fail (%v)\n", err)
				os.Exit(1)
			}
			fmt.Println("Pass")
		}
	}
}

// report prints the standard timing block for one kernel run. nThreads is
// zero for the serial kernels.
func report(elapsed time.Duration, nData, sSize int, griddings float64, nThreads int) {
	t := elapsed.Seconds()
	if nThreads > 0 {
		fmt.Printf("    Num threads: %d\n", nThreads)
	}
	fmt.Printf("    Time %g (s)\n", t)
	fmt.Printf("    Time per visibility spectral sample %g (us)\n", 1e6*t/float64(nData))
	fmt.Printf("    Time per gridding %g (ns)\n", 1e9*t/(float64(nData)*float64(sSize*sSize)))
	fmt.Printf("    Gridding rate %g (million grid points per second)\n", griddings/1e6/t)
	fmt.Println("Done")
}
