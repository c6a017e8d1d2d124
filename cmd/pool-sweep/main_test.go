package main

import (
	"testing"

	"regolith/internal/report"
)

func TestSweepRunsEveryCombination(t *testing.T) {
	sets := []paramSet{{mean: 1, scale: 2}, {mean: 3, scale: 10}, {mean: 6, scale: 20}}
	build := func(p paramSet) sweepResult {
		return sweepResult{params: p, summary: report.PoolSummary{Size: int(p.mean * p.scale)}}
	}

	for _, workers := range []int{-1, 0, 1, 4} {
		got := sweep(sets, workers, build)
		if len(got) != len(sets) {
			t.Fatalf("workers=%d: got %d results, want %d", workers, len(got), len(sets))
		}
		seen := map[paramSet]bool{}
		for _, res := range got {
			if res.summary.Size != int(res.params.mean*res.params.scale) {
				t.Fatalf("workers=%d: result for %s has size %d", workers, res.params, res.summary.Size)
			}
			seen[res.params] = true
		}
		if len(seen) != len(sets) {
			t.Fatalf("workers=%d: saw %d distinct combinations, want %d", workers, len(seen), len(sets))
		}
	}
}
