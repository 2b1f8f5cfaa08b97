package drone

import (
	"fmt"

	"github.com/nstehr/dronecraft/model"
)

// Tuning carries the knobs for the controllers a mothership commissions.
type Tuning struct {
	HarvesterWanderRadius       float64
	HarvesterScoutTurnChance    float64
	HarvesterReturnAfterHarvest bool
	SoldierWanderRadius         float64
	AttackerPatrolChance        float64
}

func DefaultTuning() Tuning {
	return Tuning{
		HarvesterWanderRadius: DefaultWanderRadius,
		SoldierWanderRadius:   DefaultWanderRadius,
		AttackerPatrolChance:  DefaultPatrolChance,
	}
}

// KnownRole reports whether NewController can build role. Motherships are
// placed by the engine and cannot be commissioned.
func KnownRole(role model.Role) bool {
	switch role {
	case model.RoleHarvester, model.RoleSoldier, model.RoleAttacker, model.RoleGunner:
		return true
	}
	return false
}

// NewController builds the controller for a drone commissioned by the
// mothership with id mothership.
func NewController(role model.Role, mothership int, rng Rand, t Tuning) (Controller, error) {
	switch role {
	case model.RoleHarvester:
		opts := []HarvesterOption{WithScoutTurns(t.HarvesterScoutTurnChance)}
		if t.HarvesterReturnAfterHarvest {
			opts = append(opts, WithReturnAfterHarvest())
		}
		return NewHarvester(mothership, rng, t.HarvesterWanderRadius, opts...), nil
	case model.RoleSoldier:
		return NewSoldier(rng, WithWanderRadius(t.SoldierWanderRadius)), nil
	case model.RoleAttacker:
		return NewSoldier(rng,
			WithRole(role),
			WithWanderRadius(t.SoldierWanderRadius),
			WithPatrol(t.AttackerPatrolChance),
		), nil
	case model.RoleGunner:
		return NewSoldier(rng,
			WithRole(role),
			WithWanderRadius(t.SoldierWanderRadius),
			WithPatrol(t.AttackerPatrolChance),
			WithVolley(),
		), nil
	}
	return nil, fmt.Errorf("unknown role %q", role)
}
