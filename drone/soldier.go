package drone

import "github.com/nstehr/dronecraft/model"

// DefaultPatrolChance is the per-tick probability of an attacker turning to
// a new random heading while on the move.
const DefaultPatrolChance = 1.0 / 30

// Soldier engages the nearest hostile in sight and wanders when idle.
// It keeps no state between ticks beyond its random source.
type Soldier struct {
	Base
	role         model.Role
	rng          Rand
	radius       float64
	patrolChance float64
	volley       bool
}

type SoldierOption func(*Soldier)

// WithRole sets the role the soldier reports; it defaults to soldier.
func WithRole(role model.Role) SoldierOption {
	return func(s *Soldier) {
		s.role = role
	}
}

func WithWanderRadius(r float64) SoldierOption {
	return func(s *Soldier) {
		if r > 0 {
			s.radius = r
		}
	}
}

// WithPatrol makes a moving soldier with nothing to fight pick a new random
// heading with probability chance each tick.
func WithPatrol(chance float64) SoldierOption {
	return func(s *Soldier) {
		s.patrolChance = chance
	}
}

// WithVolley turns the soldier into a gunner: it never chases, and when its
// missiles are ready it fires at every hostile already in range.
func WithVolley() SoldierOption {
	return func(s *Soldier) {
		s.volley = true
	}
}

func NewSoldier(rng Rand, opts ...SoldierOption) *Soldier {
	s := &Soldier{role: model.RoleSoldier, rng: rng, radius: DefaultWanderRadius}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Soldier) Role() model.Role { return s.role }

func (s *Soldier) OnTick(d Drone) {
	if s.volley {
		s.fireVolley(d)
		s.roam(d)
		return
	}
	if target, ok := nearestHostile(d.Position(), d.DronesInSight()); ok {
		s.engage(d, target)
		return
	}
	s.roam(d)
}

// engage closes on the target and fires only when both the cooldown and the
// range allow it.
func (s *Soldier) engage(d Drone, target model.Drone) {
	d.MoveTo(target.Position)
	if d.MissileCooldown() == 0 && d.IsInMissileRange(target) {
		d.FireMissilesAt(target)
	}
}

func (s *Soldier) fireVolley(d Drone) {
	if d.MissileCooldown() != 0 {
		return
	}
	for _, other := range d.DronesInSight() {
		if other.Enemy && d.IsInMissileRange(other) {
			d.FireMissilesAt(other)
		}
	}
}

// roam wanders when idle and, with patrol enabled, sometimes turns while
// already on the move.
func (s *Soldier) roam(d Drone) {
	if !d.IsMoving() {
		wander(d, s.rng, s.radius)
		return
	}
	if s.patrolChance > 0 && s.rng.Float64() < s.patrolChance {
		d.MoveInDirection(randomHeading(s.rng))
	}
}
