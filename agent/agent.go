package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nstehr/dronecraft/drone"
	"github.com/nstehr/dronecraft/ipc"
	"github.com/nstehr/dronecraft/model"
)

// Sender delivers a command to the host engine.
type Sender interface {
	Send(msgType string, data any) error
}

// MothershipFactory builds the controller for a mothership the engine
// announces at the start of a match.
type MothershipFactory func() (drone.Controller, error)

// binding ties a controller to the latest snapshot of its drone.
type binding struct {
	controller drone.Controller
	state      model.DroneState
}

// Agent owns every controller for a single player session. It is driven
// by one goroutine, the bridge read loop, so it needs no locking.
type Agent struct {
	Conn   Sender
	Player string

	newMothership MothershipFactory
	tick          int
	bound         map[int]*binding
	pending       map[string]commission // build token -> controller awaiting its drone
	untracked     map[int]bool          // own drones without a controller, already reported
	sent          int                   // commands issued while handling the current message
}

// commission is a controller waiting for the drone its mothership is building.
type commission struct {
	controller drone.Controller
	mothership int
}

func New(conn Sender, newMothership MothershipFactory) *Agent {
	return &Agent{
		Conn:          conn,
		newMothership: newMothership,
		bound:         make(map[int]*binding),
		pending:       make(map[string]commission),
		untracked:     make(map[int]bool),
	}
}

// HandleHello binds a mothership controller to each drone the engine
// announces as a mothership.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	a.Player = hello.Player
	for _, id := range hello.Motherships {
		c, err := a.newMothership()
		if err != nil {
			return nil, fmt.Errorf("mothership %d: %w", id, err)
		}
		a.bound[id] = &binding{
			controller: c,
			state:      model.DroneState{Drone: model.Drone{ID: id}},
		}
	}
	slog.Info("player identified", "player", a.Player, "motherships", hello.Motherships)

	return ack(ipc.AckMessage{Status: "ok"})
}

// HandleTick refreshes the roster, delivers the tick's events in order, and
// then runs every controller's OnTick in ascending drone id.
func (a *Agent) HandleTick(env ipc.Envelope) (*ipc.Envelope, error) {
	var ts model.TickState
	if err := json.Unmarshal(env.Data, &ts); err != nil {
		return nil, fmt.Errorf("unmarshal tick: %w", err)
	}

	a.tick = ts.Tick
	a.sent = 0
	a.refreshRoster(ts.Drones)

	for _, e := range ts.Events {
		a.dispatch(e)
	}

	ids := make([]int, 0, len(a.bound))
	for id := range a.bound {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		b := a.bound[id]
		b.controller.OnTick(a.handle(b))
	}

	slog.Debug("tick handled",
		"player", a.Player,
		"tick", ts.Tick,
		"drones", roleCounts(a.bound),
		"events", len(ts.Events),
		"commands", a.sent,
	)

	return ack(ipc.AckMessage{Status: "ok", Tick: ts.Tick, Commands: a.sent})
}

// HandleGameOver discards all controller state.
func (a *Agent) HandleGameOver(env ipc.Envelope) (*ipc.Envelope, error) {
	var over ipc.GameOverMessage
	if err := json.Unmarshal(env.Data, &over); err != nil {
		return nil, fmt.Errorf("unmarshal game_over: %w", err)
	}

	slog.Info("match ended",
		"player", a.Player,
		"winner", over.Winner,
		"tick", over.Tick,
		"drones", roleCounts(a.bound),
		"commissions", commissions(a.bound),
	)
	clear(a.bound)
	clear(a.pending)
	clear(a.untracked)

	return ack(ipc.AckMessage{Status: "ok", Tick: over.Tick})
}

// Controller returns the controller bound to drone id, if any.
func (a *Agent) Controller(id int) (drone.Controller, bool) {
	b, ok := a.bound[id]
	if !ok {
		return nil, false
	}
	return b.controller, true
}

// Pending returns the number of commissioned controllers still waiting
// for their drone to appear.
func (a *Agent) Pending() int { return len(a.pending) }

func ack(msg ipc.AckMessage) (*ipc.Envelope, error) {
	env, err := ipc.NewEnvelope(ipc.TypeAck, msg)
	if err != nil {
		return nil, err
	}
	return &env, nil
}
