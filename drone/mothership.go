package drone

import (
	"fmt"

	"github.com/nstehr/dronecraft/model"
	"github.com/nstehr/dronecraft/rules"
)

// Mothership commissions drones following a build order. The order is
// greedy: it never looks at losses, and a finished step is never reopened.
type Mothership struct {
	Base
	planner *rules.Planner
	rng     Rand
	tuning  Tuning
}

func NewMothership(order rules.BuildOrder, rng Rand, t Tuning) (*Mothership, error) {
	for _, s := range order {
		if !KnownRole(s.Role) {
			return nil, fmt.Errorf("build step %q: unknown role %q", s.Name, s.Role)
		}
	}
	planner, err := rules.NewPlanner(order)
	if err != nil {
		return nil, fmt.Errorf("build order: %w", err)
	}
	return &Mothership{planner: planner, rng: rng, tuning: t}, nil
}

func (m *Mothership) Role() model.Role { return model.RoleMothership }

// Commissioned returns how many drones of role this mothership has started.
func (m *Mothership) Commissioned(role model.Role) int {
	return m.planner.Commissioned(role)
}

func (m *Mothership) Commissions() map[model.Role]int {
	return m.planner.Counts()
}

func (m *Mothership) OnTick(d Drone) {
	if d.IsConstructing() {
		return
	}
	step, ok := m.planner.Next(d.Tick(), countHostile(d.DronesInSight()))
	if !ok {
		return
	}
	// Roles were checked in NewMothership.
	c, _ := NewController(step.Role, d.ID(), child(m.rng), m.tuning)
	d.BuildDrone(step.Loadout, c)
	m.planner.Commit(step)
}
