package eel

import "time"

// Speed levels and the step period at level 1.
const (
	MinSpeed     = 1
	MaxSpeed     = 9
	BaseInterval = 150 * time.Millisecond
)

// Interval returns the step period for a speed level:
// base / (1 + (level-1)/8). Level 1 is base, level 9 is base/2.
// Levels outside 1-9 are clamped.
func Interval(base time.Duration, level int) time.Duration {
	level = ClampSpeed(level)
	// base / (1 + (level-1)/8) == base*8 / (level+7), kept in integer math.
	return base * 8 / time.Duration(level+7)
}

// ClampSpeed restricts a speed level to 1-9.
func ClampSpeed(level int) int {
	return min(max(level, MinSpeed), MaxSpeed)
}

// Scheduler decides how many simulation steps to run per frame,
// independently of the frame rate.
//
// Elapsed frame time accumulates until it reaches the interval of the
// current speed level. The scheduler then fires once (twice with the fast
// modifier) and resets the accumulator to zero. Time beyond the interval is
// dropped, and missed intervals are never caught up.
type Scheduler struct {
	base    time.Duration
	speed   int
	elapsed time.Duration
}

// NewScheduler creates a scheduler. A non-positive base uses BaseInterval.
func NewScheduler(base time.Duration, speed int) *Scheduler {
	if base <= 0 {
		base = BaseInterval
	}
	return &Scheduler{base: base, speed: ClampSpeed(speed)}
}

// Advance adds dt to the accumulator and returns how many steps to run now:
// 0, 1, or 2 when fast is asserted.
func (s *Scheduler) Advance(dt time.Duration, fast bool) int {
	s.elapsed += dt
	if s.elapsed < s.Interval() {
		return 0
	}
	s.elapsed = 0
	if fast {
		return 2
	}
	return 1
}

// Interval returns the current step period.
func (s *Scheduler) Interval() time.Duration {
	return Interval(s.base, s.speed)
}

// Speed returns the current speed level.
func (s *Scheduler) Speed() int {
	return s.speed
}

// SetSpeed changes the speed level (clamped to 1-9). Accumulated time is kept.
func (s *Scheduler) SetSpeed(level int) {
	s.speed = ClampSpeed(level)
}

// Pending returns the time accumulated toward the next firing.
func (s *Scheduler) Pending() time.Duration {
	return s.elapsed
}

// Reset clears the accumulator.
func (s *Scheduler) Reset() {
	s.elapsed = 0
}
