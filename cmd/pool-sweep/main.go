package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"regolith/internal/core"
	"regolith/internal/grain"
	"regolith/internal/report"
)

type paramSet struct {
	mean  float64
	scale float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("mean=%.2f scale=%.1f", p.mean, p.scale)
}

type sweepResult struct {
	params  paramSet
	summary report.PoolSummary
}

func main() {
	samples := flag.Int("samples", 1000, "radius samples drawn per combination")
	minRadius := flag.Float64("min", 1, "smallest admissible radius")
	maxRadius := flag.Float64("max", 50, "largest admissible radius")
	seed := flag.Int64("seed", 1, "seed shared by every combination")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	meanOptions := []float64{1, 2, 3, 4, 6}
	scaleOptions := []float64{2, 5, 10, 15, 20}

	var sets []paramSet
	for _, mean := range meanOptions {
		for _, scale := range scaleOptions {
			sets = append(sets, paramSet{mean: mean, scale: scale})
		}
	}

	if *workers < 1 {
		*workers = 1
	}
	fmt.Printf("Sweeping %d radius pools (%d workers, %d samples, bounds [%g, %g])\n",
		len(sets), *workers, *samples, *minRadius, *maxRadius)

	build := func(params paramSet) sweepResult {
		pool := grain.BuildRadiusPool(core.NewRNG(*seed).Source(), grain.RadiusParams{
			Count:       *samples,
			Mean:        params.mean,
			ScaleFactor: params.scale,
			Min:         *minRadius,
			Max:         *maxRadius,
		})
		return sweepResult{params: params, summary: report.Summarize(pool)}
	}

	start := time.Now()
	all := sweep(sets, *workers, build)
	for _, res := range all {
		if res.summary.Size == 0 {
			fmt.Printf("Empty pool with %s\n", res.params)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].summary.Size != all[j].summary.Size {
			return all[i].summary.Size > all[j].summary.Size
		}
		return all[i].params.mean < all[j].params.mean
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		kept := 100 * float64(res.summary.Size) / float64(*samples)
		fmt.Printf("%2d) %s kept=%.1f%% %s\n", i+1, res.params, kept, res.summary)
	}
}

// sweep fans sets out to at least one worker running build and collects every
// result in completion order.
func sweep(sets []paramSet, workers int, build func(paramSet) sweepResult) []sweepResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- build(params)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	all := make([]sweepResult, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	return all
}
