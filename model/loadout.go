package model

import "fmt"

// DroneSpec is the module loadout a new drone is built with.
type DroneSpec struct {
	StorageModules   int `json:"storageModules" yaml:"storageModules"`
	MissileBatteries int `json:"missileBatteries" yaml:"missileBatteries"`
	Constructors     int `json:"constructors" yaml:"constructors"`
	Engines          int `json:"engines" yaml:"engines"`
	ShieldGenerators int `json:"shieldGenerators" yaml:"shieldGenerators"`
}

// Modules returns the total module count.
func (s DroneSpec) Modules() int {
	return s.StorageModules + s.MissileBatteries + s.Constructors + s.Engines + s.ShieldGenerators
}

// Validate rejects negative module counts and empty loadouts.
func (s DroneSpec) Validate() error {
	for name, n := range map[string]int{
		"storageModules":   s.StorageModules,
		"missileBatteries": s.MissileBatteries,
		"constructors":     s.Constructors,
		"engines":          s.Engines,
		"shieldGenerators": s.ShieldGenerators,
	} {
		if n < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, n)
		}
	}
	if s.Modules() == 0 {
		return fmt.Errorf("loadout has no modules")
	}
	return nil
}
