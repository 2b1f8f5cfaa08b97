package drone

import (
	"github.com/nstehr/dronecraft/model"
)

// DefaultWanderRadius is how far an idle drone scouts in one hop.
const DefaultWanderRadius = 500.0

// wander sends d to a random point at radius from its current position.
// Callers must only use it on an idle drone.
func wander(d Drone, rng Rand, radius float64) {
	d.MoveTo(model.Offset(d.Position(), randomHeading(rng), radius))
}
