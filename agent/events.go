package agent

import (
	"log/slog"
	"slices"

	"github.com/nstehr/dronecraft/drone"
	"github.com/nstehr/dronecraft/model"
)

// refreshRoster stores the new snapshots, binds spawned drones to the
// controllers that commissioned them, and drops controllers whose drone
// is no longer reported along with builds their mothership can no longer
// finish.
func (a *Agent) refreshRoster(states []model.DroneState) {
	present := make(map[int]bool, len(states))
	for _, s := range states {
		present[s.ID] = true

		if b, ok := a.bound[s.ID]; ok {
			b.state = s
			continue
		}

		p, ok := a.pending[s.BuildToken]
		if s.BuildToken == "" || !ok {
			a.reportUntracked(s)
			continue
		}
		delete(a.pending, s.BuildToken)
		a.bound[s.ID] = &binding{controller: p.controller, state: s}
		slog.Info("drone spawned", "player", a.Player, "drone", s.ID, "role", p.controller.Role(), "tick", a.tick)
	}

	for _, id := range vanished(a.bound, present) {
		slog.Info("drone lost", "player", a.Player, "drone", id, "role", a.bound[id].controller.Role(), "tick", a.tick)
		delete(a.bound, id)
	}

	for token, p := range a.pending {
		if _, ok := a.bound[p.mothership]; !ok {
			slog.Info("commission abandoned", "player", a.Player, "mothership", p.mothership, "role", p.controller.Role(), "token", token)
			delete(a.pending, token)
		}
	}
}

// reportUntracked warns the first time an own drone shows up with no
// controller to drive it. Later sightings are logged at debug.
func (a *Agent) reportUntracked(s model.DroneState) {
	if a.untracked[s.ID] {
		slog.Debug("untracked drone", "player", a.Player, "drone", s.ID)
		return
	}
	a.untracked[s.ID] = true
	slog.Warn("untracked drone", "player", a.Player, "drone", s.ID, "token", s.BuildToken)
}

// vanished returns the bound drone ids missing from present, ascending.
func vanished(bound map[int]*binding, present map[int]bool) []int {
	var ids []int
	for id := range bound {
		if !present[id] {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// dispatch delivers one engine event to the controller it is addressed to.
func (a *Agent) dispatch(e model.Event) {
	b, ok := a.bound[e.DroneID]
	if !ok {
		slog.Debug("event for unbound drone", "kind", e.Kind, "drone", e.DroneID)
		return
	}
	d := a.handle(b)

	switch e.Kind {
	case model.EventMineralEntersVision, model.EventArrivesAtMineral:
		if e.Mineral == nil {
			slog.Warn("event without mineral", "kind", e.Kind, "drone", e.DroneID)
			return
		}
		if e.Kind == model.EventMineralEntersVision {
			b.controller.OnMineralEntersVision(d, *e.Mineral)
		} else {
			b.controller.OnArrivesAtMineral(d, *e.Mineral)
		}
	case model.EventArrivesAtDrone:
		if e.Other == nil {
			slog.Warn("event without drone", "kind", e.Kind, "drone", e.DroneID)
			return
		}
		b.controller.OnArrivesAtDrone(d, *e.Other)
	default:
		slog.Warn("unknown event kind", "kind", e.Kind, "drone", e.DroneID)
	}
}

func roleCounts(bound map[int]*binding) map[model.Role]int {
	counts := make(map[model.Role]int)
	for _, b := range bound {
		counts[b.controller.Role()]++
	}
	return counts
}

// commissions sums what every bound mothership has started this match.
func commissions(bound map[int]*binding) map[model.Role]int {
	total := make(map[model.Role]int)
	for _, b := range bound {
		m, ok := b.controller.(*drone.Mothership)
		if !ok {
			continue
		}
		for role, n := range m.Commissions() {
			total[role] += n
		}
	}
	return total
}
