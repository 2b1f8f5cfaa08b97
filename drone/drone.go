// Package drone holds the per-drone controller policies.
//
// A controller reacts to callbacks from the host engine and issues commands
// back through the Drone it is handed. Commands are fire-and-forget: their
// effects show up in later ticks, and a command against a target that has
// since become invalid is simply ignored by the engine.
package drone

//go:generate go tool mockgen -destination=./mocks/drone_mock.go -package=mocks . Drone

import (
	"github.com/nstehr/dronecraft/model"
	"github.com/paulmach/orb"
)

// Drone is the host engine's view of the drone a controller is bound to.
type Drone interface {
	ID() int
	Tick() int
	Position() orb.Point
	IsMoving() bool
	IsHarvesting() bool
	IsConstructing() bool
	AvailableStorage() int
	MissileCooldown() int
	DronesInSight() []model.Drone
	IsInMissileRange(target model.Drone) bool

	MoveTo(p orb.Point)
	MoveToDrone(id int)
	MoveToMineral(m model.MineralCrystal)
	MoveInDirection(heading float64)
	Harvest(m model.MineralCrystal)
	GiveResourcesTo(id int)
	FireMissilesAt(target model.Drone)
	BuildDrone(spec model.DroneSpec, c Controller)
}

// Controller is the policy bound to a single drone. Callbacks for one
// controller never run concurrently.
type Controller interface {
	Role() model.Role
	OnTick(d Drone)
	OnMineralEntersVision(d Drone, m model.MineralCrystal)
	OnArrivesAtMineral(d Drone, m model.MineralCrystal)
	OnArrivesAtDrone(d Drone, other model.Drone)
}

// Base ignores every callback. Embed it and override what the policy needs.
type Base struct{}

func (Base) OnTick(Drone)                                      {}
func (Base) OnMineralEntersVision(Drone, model.MineralCrystal) {}
func (Base) OnArrivesAtMineral(Drone, model.MineralCrystal)    {}
func (Base) OnArrivesAtDrone(Drone, model.Drone)               {}
