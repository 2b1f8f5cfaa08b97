package drone

import (
	"github.com/nstehr/dronecraft/model"
	"github.com/paulmach/orb"
)

// command is one recorded call into the fake engine.
type command struct {
	kind       string
	point      orb.Point
	id         int
	heading    float64
	mineral    model.MineralCrystal
	target     model.Drone
	spec       model.DroneSpec
	controller Controller
}

// fakeDrone answers queries from its fields and records every command.
type fakeDrone struct {
	id           int
	tick         int
	pos          orb.Point
	moving       bool
	harvesting   bool
	constructing bool
	storage      int
	cooldown     int
	inSight      []model.Drone
	inRange      map[int]bool

	commands []command
}

func newFakeDrone(id int) *fakeDrone {
	return &fakeDrone{id: id, storage: 2, inRange: make(map[int]bool)}
}

func (f *fakeDrone) ID() int                      { return f.id }
func (f *fakeDrone) Tick() int                    { return f.tick }
func (f *fakeDrone) Position() orb.Point          { return f.pos }
func (f *fakeDrone) IsMoving() bool               { return f.moving }
func (f *fakeDrone) IsHarvesting() bool           { return f.harvesting }
func (f *fakeDrone) IsConstructing() bool         { return f.constructing }
func (f *fakeDrone) AvailableStorage() int        { return f.storage }
func (f *fakeDrone) MissileCooldown() int         { return f.cooldown }
func (f *fakeDrone) DronesInSight() []model.Drone { return f.inSight }

func (f *fakeDrone) IsInMissileRange(target model.Drone) bool { return f.inRange[target.ID] }

func (f *fakeDrone) MoveTo(p orb.Point) {
	f.commands = append(f.commands, command{kind: "move_to", point: p})
}

func (f *fakeDrone) MoveToDrone(id int) {
	f.commands = append(f.commands, command{kind: "move_to_drone", id: id})
}

func (f *fakeDrone) MoveToMineral(m model.MineralCrystal) {
	f.commands = append(f.commands, command{kind: "move_to_mineral", mineral: m})
}

func (f *fakeDrone) MoveInDirection(heading float64) {
	f.commands = append(f.commands, command{kind: "move_in_direction", heading: heading})
}

func (f *fakeDrone) Harvest(m model.MineralCrystal) {
	f.commands = append(f.commands, command{kind: "harvest", mineral: m})
}

func (f *fakeDrone) GiveResourcesTo(id int) {
	f.commands = append(f.commands, command{kind: "give_resources", id: id})
}

func (f *fakeDrone) FireMissilesAt(target model.Drone) {
	f.commands = append(f.commands, command{kind: "fire_missiles", target: target})
}

func (f *fakeDrone) BuildDrone(spec model.DroneSpec, c Controller) {
	f.commands = append(f.commands, command{kind: "build_drone", spec: spec, controller: c})
}

func (f *fakeDrone) kinds() []string {
	out := make([]string, len(f.commands))
	for i, c := range f.commands {
		out[i] = c.kind
	}
	return out
}

func (f *fakeDrone) reset() { f.commands = nil }

// fixedRand replays a fixed list of floats; Uint64 counts calls.
type fixedRand struct {
	floats []float64
	next   int
	seeds  uint64
}

func (r *fixedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.next%len(r.floats)]
	r.next++
	return v
}

func (r *fixedRand) Uint64() uint64 {
	r.seeds++
	return r.seeds
}
