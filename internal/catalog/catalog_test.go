package catalog

import (
	"testing"

	"fleet-route-service/internal/domain"
)

func TestLocationsAreUnique(t *testing.T) {
	locs := Locations()
	if len(locs) != 18 {
		t.Fatalf("expected 18 locations, got %d", len(locs))
	}

	names := make(map[string]bool, len(locs))
	ids := make(map[int]bool, len(locs))
	for _, loc := range locs {
		if names[loc.Name] {
			t.Errorf("duplicate location name %q", loc.Name)
		}
		if ids[loc.ID] {
			t.Errorf("duplicate location id %d", loc.ID)
		}
		names[loc.Name] = true
		ids[loc.ID] = true

		if loc.Coordinates.Lat == 0 || loc.Coordinates.Lon == 0 {
			t.Errorf("location %q has zero coordinates", loc.Name)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(Locations())

	loc, ok := reg.FindByName("Riyadh")
	if !ok {
		t.Fatal("expected Riyadh to be present")
	}
	if loc.Kind != domain.KindProduction {
		t.Errorf("Riyadh kind = %s, want %s", loc.Kind, domain.KindProduction)
	}

	// Exact match only: alias reconciliation happens in the route
	// catalogs, not the registry.
	if _, ok := reg.FindByName("Hasa"); ok {
		t.Error("registry must not resolve alias names")
	}
	if _, ok := reg.FindByName("riyadh"); ok {
		t.Error("registry must not do case folding")
	}
}

func TestOperationalRoutesReferenceKnownLocations(t *testing.T) {
	reg := NewRegistry(Locations())

	for _, route := range OperationalRoutes() {
		if _, ok := reg.FindByName(route.From); !ok {
			t.Errorf("route %d: unknown origin %q", route.RouteNumber, route.From)
		}
		if _, ok := reg.FindByName(route.To); !ok {
			t.Errorf("route %d: unknown destination %q", route.RouteNumber, route.To)
		}
		if route.Also != "" {
			if _, ok := reg.FindByName(route.Also); !ok {
				t.Errorf("route %d: unknown second stop %q", route.RouteNumber, route.Also)
			}
		}
	}
}

func TestOperationalRoutesApplyAliases(t *testing.T) {
	var route3 domain.OperationalRoute
	for _, route := range OperationalRoutes() {
		if route.RouteNumber == 3 {
			route3 = route
		}
	}
	if route3.To != "Ahsa" {
		t.Errorf("route 3 destination = %q, want alias resolved to Ahsa", route3.To)
	}
}

func TestOperationalRouteOverrides(t *testing.T) {
	overrides := map[int]domain.Segment{
		7: {From: "Hail", To: "Sakaka"},
		8: {From: "Hail", To: "Sakaka"},
		9: {From: "Majmah", To: "Qassim"},
	}

	for _, route := range OperationalRoutes() {
		want, shouldHave := overrides[route.RouteNumber]
		if !shouldHave {
			if route.SecondLegOverride != nil {
				t.Errorf("route %d: unexpected override %+v", route.RouteNumber, *route.SecondLegOverride)
			}
			continue
		}
		if route.SecondLegOverride == nil {
			t.Errorf("route %d: missing second leg override", route.RouteNumber)
			continue
		}
		if *route.SecondLegOverride != want {
			t.Errorf("route %d: override = %+v, want %+v", route.RouteNumber, *route.SecondLegOverride, want)
		}
	}
}

func TestOperationalRouteColorsAssigned(t *testing.T) {
	seen := make(map[string]bool)
	for _, route := range OperationalRoutes() {
		if route.Color == "" {
			t.Errorf("route %d has no color", route.RouteNumber)
		}
		if seen[route.Color] {
			t.Errorf("route %d repeats color %s", route.RouteNumber, route.Color)
		}
		seen[route.Color] = true
	}
}

func TestPreferredRoutesReferenceKnownLocations(t *testing.T) {
	reg := NewRegistry(Locations())

	for _, route := range PreferredRoutes() {
		if _, ok := reg.FindByName(route.From); !ok {
			t.Errorf("preferred %s->%s: unknown origin", route.From, route.To)
		}
		if _, ok := reg.FindByName(route.To); !ok {
			t.Errorf("preferred %s->%s: unknown destination", route.From, route.To)
		}
	}
}
