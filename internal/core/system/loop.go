package system

import (
	"time"
)

// Step is invoked once per fixed simulation step with the step's simulated
// timestamp. All game-state mutation happens inside Step, on the loop
// goroutine.
type Step func(now time.Time, dt time.Duration)

// Loop drives a fixed-timestep simulation. Real elapsed time is accumulated
// and consumed in uniform dt increments, with a hard cap on catch-up steps
// per frame: once the cap is hit the excess accumulator is discarded and the
// simulated clock re-anchors to wall time, so a long stall cannot trigger an
// unbounded catch-up spiral.
type Loop struct {
	dt       time.Duration
	maxSteps int
	step     Step

	last    time.Time
	simNow  time.Time
	acc     time.Duration
	started bool
}

func NewLoop(dt time.Duration, maxSteps int, step Step) *Loop {
	return &Loop{
		dt:       dt,
		maxSteps: maxSteps,
		step:     step,
	}
}

// Advance consumes wall time up to now and runs the due fixed steps.
// Returns the number of steps executed. Exposed separately from Run so the
// stepping policy is testable without a real ticker.
func (l *Loop) Advance(now time.Time) int {
	if !l.started {
		l.last = now
		l.simNow = now
		l.started = true
		return 0
	}
	elapsed := now.Sub(l.last)
	l.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	l.acc += elapsed

	steps := 0
	for l.acc >= l.dt && steps < l.maxSteps {
		l.simNow = l.simNow.Add(l.dt)
		l.step(l.simNow, l.dt)
		l.acc -= l.dt
		steps++
	}
	if l.acc >= l.dt {
		// Cap hit: discard the backlog and re-anchor to wall time.
		l.acc = 0
		l.simNow = now
	}
	return steps
}

// Run drives Advance from a real-time ticker until stop closes.
func (l *Loop) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(l.dt)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			l.Advance(now)
		}
	}
}
