// Package config loads the controller settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nstehr/dronecraft/drone"
	"github.com/nstehr/dronecraft/rules"
	"gopkg.in/yaml.v3"
)

const (
	minWanderRadius = 50.0
	maxWanderRadius = 5000.0
)

// Config is the full set of knobs for a controller process.
//
//	seed: 42
//	harvester:
//	  wanderRadius: 500
//	  scoutTurnChance: 0
//	  returnAfterHarvest: false
//	soldier:
//	  wanderRadius: 500
//	  patrolChance: 0.033
//	buildOrder:
//	  - name: harvesters
//	    role: harvester
//	    count: 3
//	    loadout: {storageModules: 2}
//	  - name: soldiers
//	    role: soldier
//	    loadout: {missileBatteries: 3, shieldGenerators: 1}
type Config struct {
	Seed       uint64           `yaml:"seed"` // 0 picks a seed at startup
	Harvester  HarvesterConfig  `yaml:"harvester"`
	Soldier    SoldierConfig    `yaml:"soldier"`
	BuildOrder rules.BuildOrder `yaml:"buildOrder"`
}

type HarvesterConfig struct {
	WanderRadius       float64 `yaml:"wanderRadius"`
	ScoutTurnChance    float64 `yaml:"scoutTurnChance"`
	ReturnAfterHarvest bool    `yaml:"returnAfterHarvest"`
}

type SoldierConfig struct {
	WanderRadius float64 `yaml:"wanderRadius"`
	PatrolChance float64 `yaml:"patrolChance"` // attacker and gunner roles only
}

func Default() Config {
	return Config{
		Harvester: HarvesterConfig{WanderRadius: drone.DefaultWanderRadius},
		Soldier: SoldierConfig{
			WanderRadius: drone.DefaultWanderRadius,
			PatrolChance: drone.DefaultPatrolChance,
		},
		BuildOrder: rules.DefaultBuildOrder(),
	}
}

// Load reads a YAML file over the defaults. Keys the file leaves out keep
// their default values; a buildOrder in the file replaces the default one.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate clamps the numeric knobs to sane ranges and checks the build
// order's structure.
func (c *Config) Validate() error {
	c.Harvester.WanderRadius = wanderRadius(c.Harvester.WanderRadius)
	c.Soldier.WanderRadius = wanderRadius(c.Soldier.WanderRadius)
	c.Harvester.ScoutTurnChance = clamp(c.Harvester.ScoutTurnChance, 0, 1)
	c.Soldier.PatrolChance = clamp(c.Soldier.PatrolChance, 0, 1)

	for _, s := range c.BuildOrder {
		if !drone.KnownRole(s.Role) {
			return fmt.Errorf("build order step %q: unknown role %q", s.Name, s.Role)
		}
	}
	if err := c.BuildOrder.Validate(); err != nil {
		return fmt.Errorf("build order: %w", err)
	}
	return nil
}

func (c Config) Tuning() drone.Tuning {
	return drone.Tuning{
		HarvesterWanderRadius:       c.Harvester.WanderRadius,
		HarvesterScoutTurnChance:    c.Harvester.ScoutTurnChance,
		HarvesterReturnAfterHarvest: c.Harvester.ReturnAfterHarvest,
		SoldierWanderRadius:         c.Soldier.WanderRadius,
		AttackerPatrolChance:        c.Soldier.PatrolChance,
	}
}

// wanderRadius treats a non-positive radius as unset.
func wanderRadius(r float64) float64 {
	if r <= 0 {
		return drone.DefaultWanderRadius
	}
	return clamp(r, minWanderRadius, maxWanderRadius)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
