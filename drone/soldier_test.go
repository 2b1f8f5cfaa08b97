package drone

import (
	"testing"

	"github.com/nstehr/dronecraft/model"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSoldier_CommitsToSingleTarget(t *testing.T) {
	s := NewSoldier(NewRand(1))
	d := newFakeDrone(5)
	d.inSight = []model.Drone{
		{ID: 30, Position: orb.Point{300, 0}, Enemy: true},
		{ID: 31, Position: orb.Point{50, 0}, Enemy: true},
		{ID: 2, Position: orb.Point{10, 0}},
		{ID: 32, Position: orb.Point{0, 200}, Enemy: true},
	}
	d.inRange[30] = true
	d.inRange[31] = true
	d.inRange[32] = true

	s.OnTick(d)

	require.Equal(t, []string{"move_to", "fire_missiles"}, d.kinds())
	require.Equal(t, orb.Point{50, 0}, d.commands[0].point)
	require.Equal(t, 31, d.commands[1].target.ID)
}

func TestSoldier_TieBreaksOnLowerID(t *testing.T) {
	s := NewSoldier(NewRand(1))
	d := newFakeDrone(5)
	d.inSight = []model.Drone{
		{ID: 9, Position: orb.Point{0, 100}, Enemy: true},
		{ID: 4, Position: orb.Point{100, 0}, Enemy: true},
		{ID: 7, Position: orb.Point{-100, 0}, Enemy: true},
	}

	s.OnTick(d)

	require.Equal(t, []string{"move_to"}, d.kinds())
	require.Equal(t, orb.Point{100, 0}, d.commands[0].point)
}

func TestSoldier_IgnoresFriendlies(t *testing.T) {
	s := NewSoldier(NewRand(1))
	d := newFakeDrone(5)
	d.inSight = []model.Drone{{ID: 2, Position: orb.Point{10, 0}}}

	s.OnTick(d)

	require.Equal(t, []string{"move_to"}, d.kinds())
	require.InDelta(t, DefaultWanderRadius, model.Distance(d.pos, d.commands[0].point), 1e-6)
}

func TestSoldier_FireGate(t *testing.T) {
	enemy := model.Drone{ID: 30, Position: orb.Point{100, 0}, Enemy: true}
	tests := []struct {
		name     string
		cooldown int
		inRange  bool
		wantFire bool
	}{
		{"ready and in range", 0, true, true},
		{"cooling down", 3, true, false},
		{"out of range", 0, false, false},
		{"cooling down and out of range", 3, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSoldier(NewRand(1))
			d := newFakeDrone(5)
			d.inSight = []model.Drone{enemy}
			d.cooldown = tc.cooldown
			d.inRange[enemy.ID] = tc.inRange

			s.OnTick(d)

			want := []string{"move_to"}
			if tc.wantFire {
				want = append(want, "fire_missiles")
			}
			require.Equal(t, want, d.kinds())
		})
	}
}

func TestSoldier_NoWanderWhileMoving(t *testing.T) {
	s := NewSoldier(NewRand(1))
	d := newFakeDrone(5)
	d.moving = true

	s.OnTick(d)

	require.Empty(t, d.commands)
}

func TestSoldier_PatrolTurnsWhileMoving(t *testing.T) {
	rng := &fixedRand{floats: []float64{0.01, 0.25}}
	s := NewSoldier(rng, WithPatrol(DefaultPatrolChance))
	d := newFakeDrone(5)
	d.moving = true

	s.OnTick(d)

	require.Equal(t, []string{"move_in_direction"}, d.kinds())
	require.InDelta(t, 2*3.141592653589793*0.25, d.commands[0].heading, 1e-9)
}

func TestSoldier_PatrolRollMisses(t *testing.T) {
	rng := &fixedRand{floats: []float64{0.9}}
	s := NewSoldier(rng, WithPatrol(DefaultPatrolChance))
	d := newFakeDrone(5)
	d.moving = true

	s.OnTick(d)

	require.Empty(t, d.commands)
}

func TestSoldier_PatrolNeverOverridesEngagement(t *testing.T) {
	rng := &fixedRand{floats: []float64{0}}
	s := NewSoldier(rng, WithPatrol(1))
	d := newFakeDrone(5)
	d.moving = true
	d.inSight = []model.Drone{{ID: 30, Position: orb.Point{100, 0}, Enemy: true}}

	s.OnTick(d)

	require.Equal(t, []string{"move_to"}, d.kinds())
}

func TestSoldier_IdleAttackerWandersInsteadOfTurning(t *testing.T) {
	rng := &fixedRand{floats: []float64{0}}
	s := NewSoldier(rng, WithPatrol(1), WithWanderRadius(80))
	d := newFakeDrone(5)

	s.OnTick(d)

	require.Equal(t, []string{"move_to"}, d.kinds())
	require.InDelta(t, 80, model.Distance(d.pos, d.commands[0].point), 1e-6)
}

func TestGunner_FiresAtEveryHostileInRange(t *testing.T) {
	s := NewSoldier(NewRand(1), WithVolley())
	d := newFakeDrone(5)
	d.moving = true
	d.inSight = []model.Drone{
		{ID: 30, Position: orb.Point{100, 0}, Enemy: true},
		{ID: 31, Position: orb.Point{900, 0}, Enemy: true},
		{ID: 2, Position: orb.Point{10, 0}},
		{ID: 32, Position: orb.Point{0, 120}, Enemy: true},
	}
	d.inRange[30] = true
	d.inRange[2] = true
	d.inRange[32] = true

	s.OnTick(d)

	require.Equal(t, []string{"fire_missiles", "fire_missiles"}, d.kinds())
	require.Equal(t, 30, d.commands[0].target.ID)
	require.Equal(t, 32, d.commands[1].target.ID)
}

func TestGunner_HoldsFireWhileCoolingDown(t *testing.T) {
	s := NewSoldier(NewRand(1), WithVolley())
	d := newFakeDrone(5)
	d.moving = true
	d.cooldown = 2
	d.inSight = []model.Drone{{ID: 30, Position: orb.Point{100, 0}, Enemy: true}}
	d.inRange[30] = true

	s.OnTick(d)

	require.Empty(t, d.commands)
}

func TestGunner_NeverChases(t *testing.T) {
	rng := &fixedRand{floats: []float64{0.5}}
	s := NewSoldier(rng, WithVolley(), WithWanderRadius(80))
	d := newFakeDrone(5)
	d.inSight = []model.Drone{{ID: 30, Position: orb.Point{1000, 0}, Enemy: true}}

	s.OnTick(d)

	// Out of range: no shot, and the idle gunner wanders rather than closing in.
	require.Equal(t, []string{"move_to"}, d.kinds())
	require.InDelta(t, 80, model.Distance(d.pos, d.commands[0].point), 1e-6)
	require.NotEqual(t, orb.Point{1000, 0}, d.commands[0].point)
}

func TestNewController_Roles(t *testing.T) {
	tuning := DefaultTuning()
	tuning.AttackerPatrolChance = 0
	for _, role := range []model.Role{model.RoleHarvester, model.RoleSoldier, model.RoleAttacker, model.RoleGunner} {
		c, err := NewController(role, mothershipID, NewRand(1), tuning)
		require.NoError(t, err)
		require.Equal(t, role, c.Role(), "controller built for %s", role)
	}

	_, err := NewController(model.RoleMothership, mothershipID, NewRand(1), tuning)
	require.Error(t, err)
}

func TestSoldier_AtMostOneEngagementPerTick(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewSoldier(NewRand(rapid.Uint64().Draw(t, "seed")), WithPatrol(rapid.Float64Range(0, 1).Draw(t, "patrol")))
		d := newFakeDrone(5)
		d.moving = rapid.Bool().Draw(t, "moving")
		d.cooldown = rapid.IntRange(0, 2).Draw(t, "cooldown")
		n := rapid.IntRange(0, 6).Draw(t, "visible")
		hostiles := 0
		for i := 0; i < n; i++ {
			enemy := rapid.Bool().Draw(t, "enemy")
			if enemy {
				hostiles++
			}
			d.inSight = append(d.inSight, model.Drone{
				ID:       100 + i,
				Position: orb.Point{rapid.Float64Range(-1000, 1000).Draw(t, "x"), rapid.Float64Range(-1000, 1000).Draw(t, "y")},
				Enemy:    enemy,
			})
			d.inRange[100+i] = rapid.Bool().Draw(t, "inRange")
		}

		s.OnTick(d)

		if hostiles == 0 {
			for _, c := range d.commands {
				if c.kind == "fire_missiles" {
					t.Fatalf("fired with no hostile in sight")
				}
			}
			return
		}
		kinds := d.kinds()
		if len(kinds) == 0 || kinds[0] != "move_to" || len(kinds) > 2 {
			t.Fatalf("unexpected engagement commands %v", kinds)
		}
		if len(kinds) == 2 {
			if kinds[1] != "fire_missiles" || d.cooldown != 0 || !d.inRange[d.commands[1].target.ID] {
				t.Fatalf("fired outside the gate: %v cooldown=%d", kinds, d.cooldown)
			}
		}
	})
}
