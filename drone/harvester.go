package drone

import "github.com/nstehr/dronecraft/model"

// HarvesterMode is the harvester's position in its collect/deposit cycle.
type HarvesterMode int

const (
	// Scouting: wandering with spare storage, ready to chase a sighted mineral.
	Scouting HarvesterMode = iota
	// Collecting: on the way to, or harvesting, a mineral.
	Collecting
	// Returning: heading back to the mothership to deposit.
	Returning
)

func (m HarvesterMode) String() string {
	switch m {
	case Scouting:
		return "scouting"
	case Collecting:
		return "collecting"
	case Returning:
		return "returning"
	}
	return "unknown"
}

// Harvester collects minerals and brings them back to its mothership.
//
// Only an arrival at a drone takes it out of Returning, so a harvester that
// has started home will not be distracted by minerals it passes.
type Harvester struct {
	Base
	mothership  int
	rng         Rand
	radius      float64
	turnChance  float64
	returnEarly bool
	mode        HarvesterMode
}

type HarvesterOption func(*Harvester)

// WithScoutTurns makes a scouting harvester that is already moving pick a
// new random heading with probability chance each tick.
func WithScoutTurns(chance float64) HarvesterOption {
	return func(h *Harvester) {
		h.turnChance = chance
	}
}

// WithReturnAfterHarvest sends the harvester home after every harvest
// instead of waiting for its storage to fill.
func WithReturnAfterHarvest() HarvesterOption {
	return func(h *Harvester) {
		h.returnEarly = true
	}
}

func NewHarvester(mothership int, rng Rand, wanderRadius float64, opts ...HarvesterOption) *Harvester {
	if wanderRadius <= 0 {
		wanderRadius = DefaultWanderRadius
	}
	h := &Harvester{
		mothership: mothership,
		rng:        rng,
		radius:     wanderRadius,
		mode:       Scouting,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Harvester) Role() model.Role { return model.RoleHarvester }

func (h *Harvester) Mode() HarvesterMode { return h.mode }

// Mothership returns the id of the drone resources are deposited at.
func (h *Harvester) Mothership() int { return h.mothership }

func (h *Harvester) OnTick(d Drone) {
	if d.IsHarvesting() {
		return
	}
	if d.IsMoving() {
		if h.mode == Scouting && h.turnChance > 0 && h.rng.Float64() < h.turnChance {
			d.MoveInDirection(randomHeading(h.rng))
		}
		return
	}
	if h.mode == Returning || d.AvailableStorage() == 0 {
		d.MoveToDrone(h.mothership)
		h.mode = Returning
		return
	}
	wander(d, h.rng, h.radius)
	h.mode = Scouting
}

func (h *Harvester) OnMineralEntersVision(d Drone, m model.MineralCrystal) {
	if h.mode != Scouting || d.AvailableStorage() == 0 {
		return
	}
	d.MoveToMineral(m)
	h.mode = Collecting
}

// OnArrivesAtMineral harvests without checking the mineral is still there;
// a depleted crystal makes the engine ignore the command.
func (h *Harvester) OnArrivesAtMineral(d Drone, m model.MineralCrystal) {
	d.Harvest(m)
	if h.returnEarly {
		h.mode = Returning
	}
}

func (h *Harvester) OnArrivesAtDrone(d Drone, other model.Drone) {
	d.GiveResourcesTo(other.ID)
	h.mode = Scouting
}
