package drone

import (
	"github.com/nstehr/dronecraft/model"
	"github.com/paulmach/orb"
)

// nearestHostile picks the closest enemy in sight, breaking distance ties
// by the lower drone id so the choice does not depend on the order the
// engine lists drones in.
func nearestHostile(from orb.Point, inSight []model.Drone) (model.Drone, bool) {
	var (
		best     model.Drone
		bestDist float64
		found    bool
	)
	for _, other := range inSight {
		if !other.Enemy {
			continue
		}
		d := model.Distance(from, other.Position)
		if !found || d < bestDist || (d == bestDist && other.ID < best.ID) {
			best, bestDist, found = other, d, true
		}
	}
	return best, found
}

func countHostile(inSight []model.Drone) int {
	n := 0
	for _, other := range inSight {
		if other.Enemy {
			n++
		}
	}
	return n
}
