package system

import "time"

// Phase defines execution ordering within a single simulation step.
type Phase int

const (
	PhaseInput      Phase = iota // 0: drain session command queues
	PhasePreUpdate               // 1: dispatch last step's events
	PhaseUpdate                  // 2: movement, AI, combat, projectiles
	PhasePostUpdate              // 3: expiry timers, respawn
	PhaseOutput                  // 4: snapshot broadcast + session flush
	PhasePersist                 // 5: batch save
)

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
