package ports

import (
	"context"
	"fleet-route-service/internal/domain"
	"fmt"
)

// Distance, travel duration and path geometry of one resolved leg.
type RouteLeg struct {
	DistanceKm      float64
	DurationSeconds float64
	Path            []domain.Coordinates
}

// Contract for computing a real-world driving route between two
// coordinate points through the external directions service.
type DirectionsProvider interface {
	// Return distance, duration and decoded path for one leg, or a
	// *StatusError carrying the service's failure status.
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (RouteLeg, error)
}

// StatusError is a typed resolver failure carrying one status from the
// fixed directions vocabulary. Transport-level failures that never
// produced a status are reported as plain errors instead.
type StatusError struct {
	Status domain.SegmentStatus
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("directions: %s", string(e.Status))
}
