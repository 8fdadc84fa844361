// SPDX-License-Identifier: Unlicense OR MIT

// Package fling animates scroll offsets.
package fling

import (
	"time"
)

// Animation glides a value towards a target along a decelerating
// curve.
type Animation struct {
	// Duration of a glide. A zero Duration jumps to the target on
	// the first Tick.
	Duration time.Duration

	active bool
	start  time.Time
	from   float64
	to     float64
}

// Start a glide from a value to a target. Starting an active
// animation retargets it from from.
func (a *Animation) Start(now time.Time, from, to float64) {
	a.active = true
	a.start = now
	a.from = from
	a.to = to
}

// Active reports whether the animation is gliding.
func (a *Animation) Active() bool {
	return a.active
}

// Stop the animation.
func (a *Animation) Stop() {
	a.active = false
}

// Target returns the destination of the latest glide.
func (a *Animation) Target() float64 {
	return a.to
}

// Tick returns the value at now, and whether the animation is still
// active after it.
func (a *Animation) Tick(now time.Time) (float64, bool) {
	if !a.active {
		return a.to, false
	}
	elapsed := now.Sub(a.start)
	if a.Duration <= 0 || elapsed >= a.Duration {
		a.active = false
		return a.to, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(a.Duration)
	return a.from + (a.to-a.from)*easeOut(t), true
}

// easeOut is a cubic deceleration curve over [0, 1].
func easeOut(t float64) float64 {
	t = 1 - t
	return 1 - t*t*t
}
