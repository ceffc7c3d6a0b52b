package appointment

import (
	"testing"

	"bookflow/models"
)

func TestGroupServices(t *testing.T) {
	groups := []models.ServiceGroup{
		{ID: 1, Name: "Hair"},
		{ID: 2, Name: "Nails"},
		{ID: 3, Name: "Massage"},
	}
	services := []models.Service{
		{ID: 10, Name: "Cut", DurationMinutes: 30, ServiceGroupID: 1},
		{ID: 11, Name: "Color", DurationMinutes: 90, ServiceGroupID: 1},
		{ID: 20, Name: "Manicure", DurationMinutes: 45, ServiceGroupID: 2},
		{ID: 99, Name: "Orphan", DurationMinutes: 15, ServiceGroupID: 42},
	}

	grouped := GroupServices(groups, services)

	if len(grouped) != len(groups) {
		t.Fatalf("expected every group preserved, got %d of %d", len(grouped), len(groups))
	}

	byID := map[int64]models.GroupedServiceGroup{}
	for _, g := range grouped {
		byID[g.ID] = g
	}

	if got := len(byID[1].Services); got != 2 {
		t.Errorf("group 1: expected 2 services, got %d", got)
	}
	if got := len(byID[2].Services); got != 1 {
		t.Errorf("group 2: expected 1 service, got %d", got)
	}
	if byID[3].Services == nil || len(byID[3].Services) != 0 {
		t.Errorf("group 3: expected empty (non-nil) services, got %v", byID[3].Services)
	}

	// No service may land under a group it doesn't reference.
	want := map[int64]int64{10: 1, 11: 1, 20: 2}
	for _, g := range grouped {
		for _, svc := range g.Services {
			if want[svc.ID] != g.ID {
				t.Errorf("service %d nested under group %d, want group %d", svc.ID, g.ID, want[svc.ID])
			}
		}
	}
}

func TestGroupServicesEmptyInputs(t *testing.T) {
	if got := GroupServices(nil, nil); len(got) != 0 {
		t.Errorf("expected no groups, got %v", got)
	}

	grouped := GroupServices(nil, []models.Service{{ID: 1, ServiceGroupID: 7}})
	if len(grouped) != 0 {
		t.Errorf("services without groups must not invent groups, got %v", grouped)
	}
}
