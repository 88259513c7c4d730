package core

import "time"

const perfWindow = 60

// PerfTimer measures a repeated piece of work and keeps the average of the
// last samples.
type PerfTimer struct {
	samples [perfWindow]time.Duration
	next    int
	count   int
	sum     time.Duration
	started time.Time
	running bool
	now     func() time.Time
}

// NewPerfTimer returns a timer reading the wall clock.
func NewPerfTimer() *PerfTimer {
	return &PerfTimer{now: time.Now}
}

// Start marks the beginning of a measurement.
func (p *PerfTimer) Start() {
	p.started = p.now()
	p.running = true
}

// Stop records the time since Start. It is a no-op without a matching Start.
func (p *PerfTimer) Stop() {
	if !p.running {
		return
	}
	p.running = false
	d := p.now().Sub(p.started)
	if p.count == perfWindow {
		p.sum -= p.samples[p.next]
	} else {
		p.count++
	}
	p.samples[p.next] = d
	p.sum += d
	p.next = (p.next + 1) % perfWindow
}

// Average returns the mean of the recorded samples, or zero before the first.
func (p *PerfTimer) Average() time.Duration {
	if p.count == 0 {
		return 0
	}
	return p.sum / time.Duration(p.count)
}

// Samples reports how many measurements are in the window.
func (p *PerfTimer) Samples() int { return p.count }

// Millis returns Average in fractional milliseconds.
func (p *PerfTimer) Millis() float64 {
	return float64(p.Average()) / float64(time.Millisecond)
}
