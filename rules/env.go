package rules

import "github.com/nstehr/dronecraft/model"

// BuildEnv is the environment build-step conditions are evaluated against.
// Methods are callable from expr, e.g. `Commissioned("harvester") >= 3`.
type BuildEnv struct {
	Tick           int
	EnemiesInSight int

	counts map[model.Role]int
	total  int
}

// Commissioned returns how many drones of role the mothership has started.
func (e BuildEnv) Commissioned(role string) int {
	return e.counts[model.Role(role)]
}

func (e BuildEnv) Total() int { return e.total }
