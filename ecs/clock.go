package ecs

import "time"

type clock struct {
	delta time.Duration
	frame uint64
}

// Advance starts a new tick that lasts dt.
func (w *World) Advance(dt time.Duration) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.clock.delta = dt
	w.clock.frame++
}

// Delta returns the duration of the current tick.
func (w *World) Delta() time.Duration {
	if w == nil {
		return 0
	}
	return w.clock.delta
}

// Frame returns the number of ticks started so far.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.clock.frame
}
