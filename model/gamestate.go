package model

import "github.com/paulmach/orb"

// Drone is what a controller can see of any drone, its own or another's.
type Drone struct {
	ID       int       `json:"id"`
	Position orb.Point `json:"position"`
	Enemy    bool      `json:"enemy"`
}

// DroneState is the engine's per-tick snapshot of one of our drones.
type DroneState struct {
	Drone

	Stored          int     `json:"stored"`
	Capacity        int     `json:"capacity"`
	MissileCooldown int     `json:"missileCooldown"`
	MissileRange    float64 `json:"missileRange"`
	Moving          bool    `json:"moving"`
	Harvesting      bool    `json:"harvesting"`
	Constructing    bool    `json:"constructing"`
	InSight         []Drone `json:"inSight"`
	BuildToken      string  `json:"buildToken,omitempty"` // echoed from build_drone on first sighting
}

// AvailableStorage is the remaining capacity; never negative.
func (s DroneState) AvailableStorage() int {
	if s.Stored >= s.Capacity {
		return 0
	}
	return s.Capacity - s.Stored
}

type MineralCrystal struct {
	ID       int       `json:"id"`
	Position orb.Point `json:"position"`
	Size     int       `json:"size"` // remaining yield
}

// EventKind names an engine callback delivered to a controller.
type EventKind string

const (
	EventMineralEntersVision EventKind = "mineral_enters_vision"
	EventArrivesAtMineral    EventKind = "arrives_at_mineral"
	EventArrivesAtDrone      EventKind = "arrives_at_drone"
)

// Event is addressed to the controller of DroneID. Exactly one of Mineral
// and Other is set depending on Kind.
type Event struct {
	Kind    EventKind       `json:"kind"`
	DroneID int             `json:"droneId"`
	Mineral *MineralCrystal `json:"mineral,omitempty"`
	Other   *Drone          `json:"other,omitempty"`
}

type TickState struct {
	Tick   int          `json:"tick"`
	Drones []DroneState `json:"drones"`
	Events []Event      `json:"events"`
}
