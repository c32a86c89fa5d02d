package system

import (
	"time"

	"github.com/riptide/server/internal/core/event"
	"github.com/riptide/server/internal/core/system"
)

// EventDispatchSystem rotates the event bus and delivers last step's events
// before any simulation system runs this step.
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() system.Phase { return system.PhasePreUpdate }

func (s *EventDispatchSystem) Update(dt time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
