package ipc

import (
	"github.com/nstehr/dronecraft/model"
	"github.com/paulmach/orb"
)

// Command types understood by the host engine.
const (
	TypeMoveTo          = "move_to"
	TypeMoveToDrone     = "move_to_drone"
	TypeMoveToMineral   = "move_to_mineral"
	TypeMoveInDirection = "move_in_direction"
	TypeHarvest         = "harvest"
	TypeGiveResources   = "give_resources"
	TypeFireMissiles    = "fire_missiles"
	TypeBuildDrone      = "build_drone"
)

type MoveToCommand struct {
	DroneID  int       `json:"drone_id"`
	Position orb.Point `json:"position"`
}

type MoveToDroneCommand struct {
	DroneID  int `json:"drone_id"`
	TargetID int `json:"target_id"`
}

type MoveToMineralCommand struct {
	DroneID   int `json:"drone_id"`
	MineralID int `json:"mineral_id"`
}

type MoveInDirectionCommand struct {
	DroneID int     `json:"drone_id"`
	Heading float64 `json:"heading"` // radians
}

type HarvestCommand struct {
	DroneID   int `json:"drone_id"`
	MineralID int `json:"mineral_id"`
}

type GiveResourcesCommand struct {
	DroneID  int `json:"drone_id"`
	TargetID int `json:"target_id"`
}

type FireMissilesCommand struct {
	DroneID  int `json:"drone_id"`
	TargetID int `json:"target_id"`
}

// BuildDroneCommand asks the engine to construct a drone. The engine echoes
// Token in the new drone's first snapshot.
type BuildDroneCommand struct {
	DroneID int             `json:"drone_id"`
	Spec    model.DroneSpec `json:"spec"`
	Token   string          `json:"token"`
}
