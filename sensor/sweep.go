package sensor

import (
	"context"
	"math"
	"time"

	"tiltone/tilt"
)

// Sweep is a synthetic sample source for running without hardware: it
// traces a circle at fixed magnitude, visiting every angular sector in
// order.
type Sweep struct {
	magnitude float64
	steps     int
	interval  time.Duration
	samples   chan tilt.Sample
}

// NewSweep creates a sweep of the given magnitude (raw counts) that
// completes a rotation in steps samples, one per interval.
func NewSweep(magnitude float64, steps int, interval time.Duration) *Sweep {
	return &Sweep{
		magnitude: magnitude,
		steps:     steps,
		interval:  interval,
		samples:   make(chan tilt.Sample, 32),
	}
}

// Samples returns the stream of generated samples. Closed when Run exits.
func (s *Sweep) Samples() <-chan tilt.Sample {
	return s.samples
}

// At returns the i-th sample of the rotation without any pacing.
func (s *Sweep) At(i int) tilt.Sample {
	theta := 2 * math.Pi * float64(i%s.steps) / float64(s.steps)
	return tilt.Sample{
		X: int16(s.magnitude * math.Cos(theta)),
		Y: int16(s.magnitude * math.Sin(theta)),
	}
}

// Run generates samples until ctx is cancelled (blocking - run in
// goroutine).
func (s *Sweep) Run(ctx context.Context) {
	defer close(s.samples)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case s.samples <- s.At(i):
			default:
			}
			i++
		}
	}
}
