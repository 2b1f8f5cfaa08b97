package rules

import (
	"log/slog"
	"maps"

	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/dronecraft/model"
)

// Planner walks a build order and remembers what has been commissioned.
// Counters only ever grow.
type Planner struct {
	steps  []*Step
	built  []int
	counts map[model.Role]int
	total  int
}

// NewPlanner validates the order and compiles every step condition.
func NewPlanner(order BuildOrder) (*Planner, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	steps, err := compileSteps(order)
	if err != nil {
		return nil, err
	}
	return &Planner{
		steps:  steps,
		built:  make([]int, len(steps)),
		counts: make(map[model.Role]int),
	}, nil
}

// Next returns the first step that is neither exhausted nor gated by a false
// condition. Gated steps are passed over without being consumed.
func (p *Planner) Next(tick, enemiesInSight int) (*Step, bool) {
	env := BuildEnv{
		Tick:           tick,
		EnemiesInSight: enemiesInSight,
		counts:         p.counts,
		total:          p.total,
	}
	for i, s := range p.steps {
		if !s.Unlimited() && p.built[i] >= s.Count {
			continue
		}
		if s.program == nil {
			return s, true
		}

		result, err := vm.Run(s.program, env)
		if err != nil {
			slog.Warn("build step condition error", "step", s.Name, "error", err)
			continue
		}
		if match, ok := result.(bool); ok && match {
			return s, true
		}
	}
	return nil, false
}

// Commit records that s was commissioned.
func (p *Planner) Commit(s *Step) {
	p.built[s.index]++
	p.counts[s.Role]++
	p.total++
}

// Commissioned returns the number of drones of role started so far.
func (p *Planner) Commissioned(role model.Role) int {
	return p.counts[role]
}

// Counts returns a copy of the per-role commissioned counters.
func (p *Planner) Counts() map[model.Role]int {
	return maps.Clone(p.counts)
}

// Exhausted reports whether no step can ever be returned again.
func (p *Planner) Exhausted() bool {
	for i, s := range p.steps {
		if s.Unlimited() || p.built[i] < s.Count {
			return false
		}
	}
	return true
}
