package catalog

import "fleet-route-service/internal/domain"

// Registry provides exact-match lookup over the static location
// catalog. No fuzzy matching and no case normalization: route catalogs
// are normalized against the alias table before they reach the
// registry.
type Registry struct {
	byName map[string]domain.Location
	all    []domain.Location
}

func NewRegistry(locations []domain.Location) *Registry {
	byName := make(map[string]domain.Location, len(locations))
	for _, loc := range locations {
		byName[loc.Name] = loc
	}
	return &Registry{byName: byName, all: locations}
}

// FindByName returns the location with the given name, if present.
func (r *Registry) FindByName(name string) (domain.Location, bool) {
	loc, ok := r.byName[name]
	return loc, ok
}

// Locations returns the full catalog in declaration order.
func (r *Registry) Locations() []domain.Location {
	out := make([]domain.Location, len(r.all))
	copy(out, r.all)
	return out
}
