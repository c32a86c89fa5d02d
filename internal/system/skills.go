package system

import (
	"time"

	"github.com/riptide/server/internal/core/system"
	"github.com/riptide/server/internal/handler"
)

// SkillSystem lands deferred skill effects, currently just the second hit of
// the double stab. Due entries were revalidated out of the queue already if
// the caster disconnected; ConsumeStab rechecks zone and liveness.
type SkillSystem struct {
	deps *handler.Deps
}

func NewSkillSystem(deps *handler.Deps) *SkillSystem {
	return &SkillSystem{deps: deps}
}

func (s *SkillSystem) Phase() system.Phase { return system.PhaseUpdate }

func (s *SkillSystem) Update(dt time.Duration) {
	for _, ps := range s.deps.World.DueStabs(s.deps.World.Now()) {
		handler.ConsumeStab(s.deps, ps)
	}
}
