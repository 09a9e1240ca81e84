package services

import (
	"context"
	"errors"
	"fleet-route-service/internal/domain"
	"sync"
)

// ErrPassInFlight is returned when a refresh is requested while an
// aggregation pass is still settling.
var ErrPassInFlight = errors.New("aggregation pass already in flight")

// SegmentStore owns the published SegmentMap for the operational route
// set and serializes aggregation passes over it.
//
// Refreshes are guarded two ways: a new pass is refused while one is
// running, and every pass carries a generation number so a pass
// superseded by Invalidate while in flight settles quietly without
// publishing. Readers only ever observe fully settled maps.
type SegmentStore struct {
	aggregator *SegmentAggregator
	routes     []domain.OperationalRoute

	mu         sync.Mutex
	running    bool
	generation uint64
	current    domain.SegmentMap
}

func NewSegmentStore(aggregator *SegmentAggregator, routes []domain.OperationalRoute) *SegmentStore {
	return &SegmentStore{aggregator: aggregator, routes: routes}
}

// Current returns the last published map, or false when no pass has
// completed yet. The returned map must be treated as immutable.
func (s *SegmentStore) Current() (domain.SegmentMap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != nil
}

// Running reports whether a pass is currently settling.
func (s *SegmentStore) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Invalidate marks the published map stale. An in-flight pass started
// before the call will not publish its result.
func (s *SegmentStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.current = nil
}

// Refresh runs one aggregation pass and publishes its result, unless a
// pass is already in flight (ErrPassInFlight) or this pass was
// invalidated while settling.
func (s *SegmentStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrPassInFlight
	}
	s.running = true
	gen := s.generation
	s.mu.Unlock()

	result := s.aggregator.ResolveAll(ctx, s.routes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	if gen != s.generation {
		// Superseded while settling; drop the stale result.
		return nil
	}
	s.current = result
	return nil
}
