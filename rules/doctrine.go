package rules

import (
	"fmt"

	"github.com/nstehr/dronecraft/model"
)

// BuildOrder is consumed front to back by the mothership. Finite steps are
// never revisited once exhausted, so losses are not replenished.
type BuildOrder []Step

var (
	// HarvesterSpec is storage-biased.
	HarvesterSpec = model.DroneSpec{StorageModules: 2}
	// SoldierSpec is weapons/shield-biased.
	SoldierSpec = model.DroneSpec{MissileBatteries: 3, ShieldGenerators: 1}
)

// DefaultHarvesterQuota is how many harvesters the default order builds
// before switching to soldiers.
const DefaultHarvesterQuota = 3

// DefaultBuildOrder returns three harvesters followed by soldiers forever.
func DefaultBuildOrder() BuildOrder {
	return BuildOrder{
		{Name: "harvesters", Role: model.RoleHarvester, Loadout: HarvesterSpec, Count: DefaultHarvesterQuota},
		{Name: "soldiers", Role: model.RoleSoldier, Loadout: SoldierSpec},
	}
}

// Validate checks the order's structure. Expressions are checked when a
// Planner compiles them.
func (o BuildOrder) Validate() error {
	if len(o) == 0 {
		return fmt.Errorf("build order is empty")
	}
	for i, s := range o {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if s.Role == "" {
			return fmt.Errorf("step %s: role is required", name)
		}
		if s.Count < 0 {
			return fmt.Errorf("step %s: count must not be negative, got %d", name, s.Count)
		}
		if err := s.Loadout.Validate(); err != nil {
			return fmt.Errorf("step %s: %w", name, err)
		}
	}
	return nil
}
