package core

import "time"

// FixedStep paces simulation updates at a steady rate of steps per second,
// independent of how often the host loop calls it.
type FixedStep struct {
	rate        float64
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
// The first call to Due reports a step immediately.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the number of steps per second. Non-positive rates fall
// back to one step per second. It is safe to call from the main loop.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		rate = 1
	}
	f.rate = rate
	f.step = time.Duration(float64(time.Second) / rate)
	if f.step <= 0 {
		f.step = time.Nanosecond
	}
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() float64 { return f.rate }

// Interval returns the duration of one step.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports whether a step should run at now. Time not yet consumed carries
// over, so repeated calls with the same now drain every step that is owed.
func (f *FixedStep) Due(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	if now.After(f.last) {
		f.accumulator += now.Sub(f.last)
		f.last = now
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Drop discards any time owed, e.g. after a pause.
func (f *FixedStep) Drop(now time.Time) {
	f.accumulator = 0
	f.last = now
}
