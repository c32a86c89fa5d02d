package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoopRunsDueSteps(t *testing.T) {
	var steps int
	var dts []time.Duration
	l := NewLoop(100*time.Millisecond, 5, func(now time.Time, dt time.Duration) {
		steps++
		dts = append(dts, dt)
	})

	start := time.Unix(0, 0)
	assert.Zero(t, l.Advance(start), "first call only anchors the clock")

	assert.Equal(t, 3, l.Advance(start.Add(350*time.Millisecond)))
	assert.Equal(t, 3, steps)
	for _, dt := range dts {
		assert.Equal(t, 100*time.Millisecond, dt, "every step gets the fixed dt")
	}

	// Remaining 50ms stays in the accumulator: 50ms + 100ms is one step.
	assert.Equal(t, 1, l.Advance(start.Add(450*time.Millisecond)))
	assert.Equal(t, 4, steps)
}

func TestLoopCapDiscardsBacklog(t *testing.T) {
	var steps int
	l := NewLoop(100*time.Millisecond, 5, func(time.Time, time.Duration) { steps++ })

	start := time.Unix(0, 0)
	l.Advance(start)

	// A 2s stall is worth 20 steps; the cap allows 5 and discards the rest.
	assert.Equal(t, 5, l.Advance(start.Add(2*time.Second)))
	assert.Equal(t, 5, steps)

	// After the discard, one more tick interval yields exactly one step,
	// not a resumed backlog.
	assert.Equal(t, 1, l.Advance(start.Add(2100*time.Millisecond)))
}

func TestLoopSimulatedClockAdvancesByDT(t *testing.T) {
	var stamps []time.Time
	l := NewLoop(100*time.Millisecond, 5, func(now time.Time, _ time.Duration) {
		stamps = append(stamps, now)
	})

	start := time.Unix(100, 0)
	l.Advance(start)
	l.Advance(start.Add(300 * time.Millisecond))

	assert.Len(t, stamps, 3)
	for i := 1; i < len(stamps); i++ {
		assert.Equal(t, 100*time.Millisecond, stamps[i].Sub(stamps[i-1]))
	}
}
