package domain

// LocationKind classifies a catalog point by its role in the network.
type LocationKind string

const (
	KindWarehouse  LocationKind = "warehouse"
	KindBranch     LocationKind = "branch"
	KindProduction LocationKind = "production"
)

// Represents a single named point in the logistics network.
// Locations are loaded once from the static catalog at process start
// and never mutated afterwards.
type Location struct {
	ID   int
	Name string
	Kind LocationKind
	Coordinates
}
