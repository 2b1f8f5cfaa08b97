package rules

import (
	"strings"
	"testing"

	"github.com/nstehr/dronecraft/model"
)

func TestDefaultBuildOrder(t *testing.T) {
	o := DefaultBuildOrder()
	if err := o.Validate(); err != nil {
		t.Fatalf("default order invalid: %v", err)
	}
	if len(o) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(o))
	}
	if o[0].Role != model.RoleHarvester || o[0].Count != DefaultHarvesterQuota {
		t.Errorf("first step = %s x%d, want harvester x%d", o[0].Role, o[0].Count, DefaultHarvesterQuota)
	}
	if o[0].Loadout != HarvesterSpec {
		t.Errorf("harvester loadout = %+v, want %+v", o[0].Loadout, HarvesterSpec)
	}
	if o[1].Role != model.RoleSoldier || !o[1].Unlimited() {
		t.Errorf("second step = %s x%d, want unlimited soldiers", o[1].Role, o[1].Count)
	}
}

func TestBuildOrderValidate(t *testing.T) {
	tests := []struct {
		name    string
		order   BuildOrder
		wantErr string
	}{
		{"empty", BuildOrder{}, "empty"},
		{"no role", BuildOrder{{Name: "x", Loadout: HarvesterSpec}}, "role is required"},
		{"negative count", BuildOrder{{Name: "x", Role: model.RoleSoldier, Loadout: SoldierSpec, Count: -1}}, "count"},
		{"empty loadout", BuildOrder{{Name: "x", Role: model.RoleSoldier}}, "no modules"},
		{"unnamed step", BuildOrder{{Role: model.RoleSoldier}}, "step #0"},
	}
	for _, tc := range tests {
		err := tc.order.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantErr)
		}
	}
}
