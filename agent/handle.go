package agent

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/nstehr/dronecraft/drone"
	"github.com/nstehr/dronecraft/ipc"
	"github.com/nstehr/dronecraft/model"
	"github.com/paulmach/orb"
)

// handle is the drone.Drone a controller sees: queries read the drone's
// latest snapshot, commands go straight to the engine.
type handle struct {
	a *Agent
	b *binding
}

func (a *Agent) handle(b *binding) drone.Drone {
	return handle{a: a, b: b}
}

func (h handle) ID() int                      { return h.b.state.ID }
func (h handle) Tick() int                    { return h.a.tick }
func (h handle) Position() orb.Point          { return h.b.state.Position }
func (h handle) IsMoving() bool               { return h.b.state.Moving }
func (h handle) IsHarvesting() bool           { return h.b.state.Harvesting }
func (h handle) IsConstructing() bool         { return h.b.state.Constructing }
func (h handle) AvailableStorage() int        { return h.b.state.AvailableStorage() }
func (h handle) MissileCooldown() int         { return h.b.state.MissileCooldown }
func (h handle) DronesInSight() []model.Drone { return h.b.state.InSight }

func (h handle) IsInMissileRange(target model.Drone) bool {
	return model.Distance(h.b.state.Position, target.Position) <= h.b.state.MissileRange
}

func (h handle) MoveTo(p orb.Point) {
	h.move(h.send(ipc.TypeMoveTo, ipc.MoveToCommand{DroneID: h.ID(), Position: p}))
}

func (h handle) MoveToDrone(id int) {
	h.move(h.send(ipc.TypeMoveToDrone, ipc.MoveToDroneCommand{DroneID: h.ID(), TargetID: id}))
}

func (h handle) MoveToMineral(m model.MineralCrystal) {
	h.move(h.send(ipc.TypeMoveToMineral, ipc.MoveToMineralCommand{DroneID: h.ID(), MineralID: m.ID}))
}

func (h handle) MoveInDirection(heading float64) {
	h.move(h.send(ipc.TypeMoveInDirection, ipc.MoveInDirectionCommand{DroneID: h.ID(), Heading: heading}))
}

func (h handle) Harvest(m model.MineralCrystal) {
	if h.send(ipc.TypeHarvest, ipc.HarvestCommand{DroneID: h.ID(), MineralID: m.ID}) {
		h.b.state.Harvesting = true
	}
}

// GiveResourcesTo empties the cargo in the snapshot once the command is out.
// The transfer keeps the drone busy until the next snapshot, so a policy
// does not send it anywhere else in the same tick.
func (h handle) GiveResourcesTo(id int) {
	if h.send(ipc.TypeGiveResources, ipc.GiveResourcesCommand{DroneID: h.ID(), TargetID: id}) {
		h.b.state.Stored = 0
		h.b.state.Harvesting = true
	}
}

func (h handle) FireMissilesAt(target model.Drone) {
	h.send(ipc.TypeFireMissiles, ipc.FireMissilesCommand{DroneID: h.ID(), TargetID: target.ID})
}

// BuildDrone parks c under a fresh token until the engine reports the
// drone built from it.
func (h handle) BuildDrone(spec model.DroneSpec, c drone.Controller) {
	token := uuid.NewString()
	if !h.send(ipc.TypeBuildDrone, ipc.BuildDroneCommand{DroneID: h.ID(), Spec: spec, Token: token}) {
		return
	}
	h.a.pending[token] = commission{controller: c, mothership: h.ID()}
	h.b.state.Constructing = true
	slog.Debug("drone commissioned", "mothership", h.ID(), "role", c.Role(), "token", token)
}

// move marks the drone as moving once a movement command went out, so
// later callbacks in the same tick see it busy. The next snapshot from the
// engine replaces the guess.
func (h handle) move(sent bool) {
	if sent {
		h.b.state.Moving = true
		h.b.state.Harvesting = false
	}
}

// send reports whether the command reached the engine. Failures are logged
// and otherwise invisible to the controller.
func (h handle) send(msgType string, data any) bool {
	if err := h.a.Conn.Send(msgType, data); err != nil {
		slog.Error("command send failed", "type", msgType, "drone", h.ID(), "error", err)
		return false
	}
	h.a.sent++
	return true
}
