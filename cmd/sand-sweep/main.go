package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"mad-sand/internal/core"
	"mad-sand/internal/sims/sand"
)

func main() {
	steps := flag.Int("steps", 2000, "maximum steps per run")
	parallel := flag.Int("parallel", runtime.NumCPU(), "runs evaluated concurrently")
	size := flag.Int("size", 128, "grid width and height")
	seedList := flag.String("seeds", "1,2,3", "comma separated seeds")
	workerList := flag.String("workers", "1,4", "comma separated worker counts per run")
	scenarioList := flag.String("scenarios", strings.Join(sand.Scenarios(), ","), "comma separated scenarios")
	pngPath := flag.String("png", "", "write the first run's final grid to this PNG file")
	level := flag.String("log-level", "warn", "log level: debug, info, warn or error")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	lvl, err := core.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log level: %v\n", err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	kv := overrides.Map()
	if _, ok := kv["w"]; !ok {
		kv["w"] = strconv.Itoa(*size)
	}
	if _, ok := kv["h"]; !ok {
		kv["h"] = strconv.Itoa(*size)
	}
	base := sand.FromMap(kv)
	if err := base.Validate(); err != nil {
		log.Error("invalid config", "err", err)
		os.Exit(1)
	}

	seeds, err := parseList(*seedList, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
	if err != nil {
		log.Error("invalid -seeds", "err", err)
		os.Exit(1)
	}
	workers, err := parseList(*workerList, strconv.Atoi)
	if err != nil {
		log.Error("invalid -workers", "err", err)
		os.Exit(1)
	}
	scenarios, _ := parseList(*scenarioList, func(s string) (string, error) { return s, nil })

	jobs := buildJobs(scenarios, seeds, workers)
	fmt.Printf("Sweeping %d runs on %dx%d (%d parallel, %d steps max)\n", len(jobs), base.Width, base.Height, *parallel, *steps)

	results := sweep(base, jobs, *steps, *parallel, log)
	for _, r := range results {
		fmt.Printf("%-32s steps=%5d settled=%-5t conserved=%-5t matter=%7d %8.3fms/step\n",
			r.job, r.steps, r.settled, r.conserved, r.matter, float64(r.perStep.Microseconds())/1000)
	}
	if bad := divergent(results); len(bad) > 0 {
		fmt.Printf("Worker counts disagree for: %s\n", strings.Join(bad, ", "))
	}

	if *pngPath != "" && len(results) > 0 {
		if err := writePNG(*pngPath, results[0].sim); err != nil {
			log.Error("write png", "path", *pngPath, "err", err)
			os.Exit(1)
		}
	}
}

func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	var out []T
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := parse(part)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func writePNG(path string, sim *sand.Simulator) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, sim.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
