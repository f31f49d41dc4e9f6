package internal

import (
	"math"
	"time"
)

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt32 bounds v to [lo, hi].
func ClampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DampFactor converts a per-frame damping factor into the share of the
// remaining distance to cover after dt. The result lies in [0, 1], so a
// damped value never passes its target.
func DampFactor(damping float64, dt, frame time.Duration) float64 {
	if dt <= 0 || frame <= 0 {
		return 0
	}
	return Clamp(1-math.Pow(1-damping, float64(dt)/float64(frame)), 0, 1)
}

// Damp moves current toward target by the time-corrected damping factor and
// snaps once the remaining distance drops below snap.
func Damp(current, target, damping, snap float64, dt, frame time.Duration) float64 {
	current += (target - current) * DampFactor(damping, dt, frame)
	if math.Abs(target-current) < snap {
		return target
	}
	return current
}

// Approach moves current linearly toward target, covering the full [0, 1]
// range in span.
func Approach(current, target float64, dt, span time.Duration) float64 {
	if span <= 0 {
		return target
	}
	step := float64(dt) / float64(span)
	if current < target {
		return math.Min(target, current+step)
	}
	return math.Max(target, current-step)
}
