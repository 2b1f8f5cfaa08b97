package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/dronecraft/model"
)

// Step is one entry of a build order: commission Count drones of Role with
// Loadout, optionally gated by the When expression. A zero Count never runs out.
type Step struct {
	Name    string          `yaml:"name"`
	Role    model.Role      `yaml:"role"`
	Loadout model.DroneSpec `yaml:"loadout"`
	Count   int             `yaml:"count"`
	When    string          `yaml:"when,omitempty"` // expr source evaluated against BuildEnv

	index   int
	program *vm.Program
}

// Unlimited reports whether the step is never exhausted.
func (s *Step) Unlimited() bool { return s.Count == 0 }
