package directions

import (
	"context"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"fmt"
)

type MockLeg struct {
	From, To domain.Coordinates
	Km       float64
	Seconds  float64
	Path     []domain.Coordinates
	Err      error
}

// MockDirectionsProvider serves canned legs keyed by coordinate pair.
type MockDirectionsProvider struct {
	m map[string]MockLeg
}

func NewMockDirectionsProvider(legs []MockLeg) *MockDirectionsProvider {
	m := make(map[string]MockLeg, len(legs))
	for _, leg := range legs {
		m[pairKey(leg.From, leg.To)] = leg
	}
	return &MockDirectionsProvider{m: m}
}

func pairKey(a, b domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", a.Lat, a.Lon, b.Lat, b.Lon)
}

func (p *MockDirectionsProvider) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteLeg, error) {
	leg, ok := p.m[pairKey(origin, destination)]
	if !ok {
		return ports.RouteLeg{}, &ports.StatusError{Status: domain.StatusZeroResults}
	}
	if leg.Err != nil {
		return ports.RouteLeg{}, leg.Err
	}

	path := leg.Path
	if path == nil {
		path = []domain.Coordinates{origin, destination}
	}

	return ports.RouteLeg{
		DistanceKm:      leg.Km,
		DurationSeconds: leg.Seconds,
		Path:            path,
	}, nil
}
