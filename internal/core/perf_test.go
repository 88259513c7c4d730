package core

import (
	"testing"
	"time"
)

func TestPerfTimerAverages(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	p := NewPerfTimer()
	p.now = clock.now

	if p.Average() != 0 {
		t.Fatalf("expected zero before any sample, got %v", p.Average())
	}
	for _, d := range []time.Duration{2 * time.Millisecond, 4 * time.Millisecond} {
		p.Start()
		clock.advance(d)
		p.Stop()
	}
	if got := p.Average(); got != 3*time.Millisecond {
		t.Fatalf("expected 3ms average, got %v", got)
	}
	if p.Samples() != 2 {
		t.Fatalf("expected 2 samples, got %d", p.Samples())
	}
	if got := p.Millis(); got != 3 {
		t.Fatalf("expected 3.0 ms, got %g", got)
	}
}

func TestPerfTimerStopWithoutStart(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	p := NewPerfTimer()
	p.now = clock.now

	p.Stop()
	p.Start()
	clock.advance(time.Millisecond)
	p.Stop()
	clock.advance(time.Second)
	p.Stop()
	if got := p.Average(); got != time.Millisecond {
		t.Fatalf("unmatched Stop should not record, got %v", got)
	}
}

func TestPerfTimerWindowDropsOldSamples(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	p := NewPerfTimer()
	p.now = clock.now

	p.Start()
	clock.advance(time.Second)
	p.Stop()
	for i := 0; i < perfWindow; i++ {
		p.Start()
		clock.advance(time.Millisecond)
		p.Stop()
	}
	if got := p.Average(); got != time.Millisecond {
		t.Fatalf("old sample should have left the window, got %v", got)
	}
}
