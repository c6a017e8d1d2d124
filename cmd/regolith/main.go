package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"regolith/internal/batch"
	"regolith/internal/grain"
	"regolith/internal/imageio"
	"regolith/internal/report"
)

func main() {
	opts := newOptions()
	opts.Bind(flag.CommandLine)
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "usage: regolith [flags]\n\nparameters for -set: %s\n\n", strings.Join(grain.Keys(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := opts.runConfig()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}
	format, err := imageio.ParseFormat(opts.Format)
	if err != nil {
		log.Fatal(err)
	}

	for _, line := range cfg.Parameters().Lines() {
		log.Print(line)
	}

	pool := batch.BuildPool(cfg)
	if len(pool) == 0 {
		log.Fatalf("configuration: %v: no radius in [%g, %g] out of %d samples",
			grain.ErrEmptyRadiusPool, cfg.Radius.Min, cfg.Radius.Max, cfg.Radius.Count)
	}
	log.Printf("radius pool: %s", report.Summarize(pool))

	if opts.HistPath != "" {
		if err := report.WriteRadiusHistogram(pool, opts.HistBins, opts.HistPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("radius histogram written to %s", opts.HistPath)
	}

	writer, err := imageio.NewWriter(opts.OutDir, format)
	if err != nil {
		log.Fatal(err)
	}

	runner := &batch.Runner{Config: cfg, Workers: opts.Workers, Writer: writer}
	start := time.Now()
	results, err := runner.RunWithPool(pool)

	var total grain.Stats
	failed := 0
	for _, res := range results {
		total.Deposited += res.Stats.Deposited
		total.Skipped += res.Stats.Skipped
		total.Erosive += res.Stats.Erosive
		if res.Err != nil {
			failed++
		}
	}
	log.Printf("%d grains in %s: %d deposited (%d erosive), %d skipped",
		len(results), time.Since(start).Round(time.Millisecond), total.Deposited, total.Erosive, total.Skipped)
	if err != nil {
		log.Fatalf("%d of %d grains failed: %v", failed, len(results), err)
	}
}
