package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"mad-sand/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// Map turns the overrides into the form sand.FromMap expects. Later entries
// win.
func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

type job struct {
	scenario string
	seed     int64
	workers  int
}

func (j job) String() string {
	return fmt.Sprintf("%s seed=%d workers=%d", j.scenario, j.seed, j.workers)
}

type result struct {
	job       job
	steps     int
	settled   bool
	conserved bool
	matter    int
	perStep   time.Duration
	sim       *sand.Simulator
}

// runJob resets a fresh simulator for j and steps it until it settles or the
// budget runs out.
func runJob(base sand.Config, j job, maxSteps int, log *slog.Logger) result {
	cfg := base
	cfg.Scenario = j.scenario
	cfg.Seed = j.seed
	cfg.Workers = j.workers

	sim := sand.NewWithConfig(cfg)
	sim.SetLogger(log)
	sim.Reset(j.seed)
	before := sim.Census()

	res := result{job: j, sim: sim}
	start := time.Now()
	for res.steps < maxSteps {
		sim.Step(1, false)
		res.steps++
		if sim.Settled() {
			res.settled = true
			break
		}
	}
	if res.steps > 0 {
		res.perStep = time.Since(start) / time.Duration(res.steps)
	}
	after := sim.Census()
	res.conserved = before == after
	res.matter = after.Matter()
	return res
}

// sweep runs every job on a pool of goroutines and returns the results in
// job order.
func sweep(base sand.Config, jobs []job, maxSteps, parallel int, log *slog.Logger) []result {
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	in := make(chan int)
	out := make([]result, len(jobs))
	var wg sync.WaitGroup
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range in {
				out[idx] = runJob(base, jobs[idx], maxSteps, log)
			}
		}()
	}
	for i := range jobs {
		in <- i
	}
	close(in)
	wg.Wait()
	return out
}

func buildJobs(scenarios []string, seeds []int64, workers []int) []job {
	var jobs []job
	for _, sc := range scenarios {
		for _, seed := range seeds {
			for _, w := range workers {
				jobs = append(jobs, job{scenario: sc, seed: seed, workers: w})
			}
		}
	}
	return jobs
}

// divergent lists scenario/seed pairs whose final grids differ between
// worker counts.
func divergent(results []result) []string {
	type key struct {
		scenario string
		seed     int64
	}
	first := map[key]result{}
	seen := map[key]bool{}
	var out []string
	for _, r := range results {
		k := key{r.job.scenario, r.job.seed}
		ref, ok := first[k]
		if !ok {
			first[k] = r
			continue
		}
		if seen[k] || sameKinds(ref.sim, r.sim) {
			continue
		}
		seen[k] = true
		out = append(out, fmt.Sprintf("%s seed=%d", k.scenario, k.seed))
	}
	sort.Strings(out)
	return out
}

func sameKinds(a, b *sand.Simulator) bool {
	ca, cb := a.Cells(), b.Cells()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if ca[i].Kind() != cb[i].Kind() {
			return false
		}
	}
	return true
}
