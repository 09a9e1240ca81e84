package services

import (
	"context"
	"errors"
	"fleet-route-service/internal/adapters/directions"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"sync/atomic"
	"testing"
)

type providerFunc func(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteLeg, error)

func (f providerFunc) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteLeg, error) {
	return f(ctx, origin, destination)
}

func coord(reg LocationFinder, name string) domain.Coordinates {
	loc, ok := reg.FindByName(name)
	if !ok {
		panic("unknown test location " + name)
	}
	return loc.Coordinates
}

func TestResolveAllKeySetMatchesUnion(t *testing.T) {
	reg := testRegistry()

	legs := []directions.MockLeg{
		{From: coord(reg, "Riyadh"), To: coord(reg, "Jeddah"), Km: 950, Seconds: 33000},
		{From: coord(reg, "Riyadh"), To: coord(reg, "Qassim"), Km: 330, Seconds: 12000},
		{From: coord(reg, "Majmah"), To: coord(reg, "Qassim"), Km: 120, Seconds: 4800},
	}
	agg := NewSegmentAggregator(reg, directions.NewMockDirectionsProvider(legs), nil)

	routes := []domain.OperationalRoute{
		{RouteNumber: 1, From: "Riyadh", To: "Jeddah"},
		{RouteNumber: 2, From: "Riyadh", To: "Jeddah"},
		{
			RouteNumber: 9, From: "Riyadh", To: "Qassim", Also: "Majmah",
			SecondLegOverride: &domain.Segment{From: "Majmah", To: "Qassim"},
		},
	}

	result := agg.ResolveAll(context.Background(), routes)

	want := []string{"Riyadh-Jeddah", "Riyadh-Qassim", "Majmah-Qassim"}
	if len(result) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(result))
	}
	for _, key := range want {
		seg, ok := result[key]
		if !ok {
			t.Fatalf("missing key %q", key)
		}
		if seg.Failed() {
			t.Errorf("key %q unexpectedly failed: %s", key, seg.Status)
		}
	}
}

func TestResolveAllPartialFailure(t *testing.T) {
	reg := testRegistry()

	pairs := [][2]string{
		{"Riyadh", "Jeddah"},
		{"Riyadh", "Qassim"},
		{"Riyadh", "Majmah"},
		{"Riyadh", "Hail"},
		{"Jeddah", "Riyadh"},
	}

	legs := make([]directions.MockLeg, 0, len(pairs))
	for i, p := range pairs {
		leg := directions.MockLeg{From: coord(reg, p[0]), To: coord(reg, p[1]), Km: float64(100 * (i + 1)), Seconds: 3600}
		if p[0] == "Riyadh" && p[1] == "Hail" {
			leg.Err = &ports.StatusError{Status: domain.StatusZeroResults}
		}
		legs = append(legs, leg)
	}
	agg := NewSegmentAggregator(reg, directions.NewMockDirectionsProvider(legs), nil)

	routes := make([]domain.OperationalRoute, 0, len(pairs))
	for i, p := range pairs {
		routes = append(routes, domain.OperationalRoute{RouteNumber: i + 1, From: p[0], To: p[1]})
	}

	result := agg.ResolveAll(context.Background(), routes)

	if len(result) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(result))
	}

	failed := result["Riyadh-Hail"]
	if failed.Status != domain.StatusZeroResults {
		t.Errorf("Riyadh-Hail status = %q, want ZERO_RESULTS", failed.Status)
	}

	for key, seg := range result {
		if key == "Riyadh-Hail" {
			continue
		}
		if seg.Failed() {
			t.Errorf("key %q should have resolved, got status %q", key, seg.Status)
		}
		if seg.DistanceKm <= 0 {
			t.Errorf("key %q has non-positive distance %f", key, seg.DistanceKm)
		}
	}
}

func TestResolveTransportErrorMapsToAPINotLoaded(t *testing.T) {
	reg := testRegistry()

	provider := providerFunc(func(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteLeg, error) {
		return ports.RouteLeg{}, errors.New("dial tcp: connection refused")
	})
	agg := NewSegmentAggregator(reg, provider, nil)

	resolved := agg.Resolve(context.Background(), domain.Segment{From: "Riyadh", To: "Jeddah"})
	if resolved.Status != domain.StatusAPINotLoaded {
		t.Fatalf("status = %q, want API_NOT_LOADED", resolved.Status)
	}
}

func TestResolveRegistryMissSkipsProvider(t *testing.T) {
	reg := testRegistry()

	var calls atomic.Int64
	provider := providerFunc(func(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteLeg, error) {
		calls.Add(1)
		return ports.RouteLeg{}, nil
	})
	agg := NewSegmentAggregator(reg, provider, nil)

	resolved := agg.Resolve(context.Background(), domain.Segment{From: "Riyadh", To: "Atlantis"})
	if resolved.Status != domain.StatusLocationNotFound {
		t.Fatalf("status = %q, want LOCATION_NOT_FOUND", resolved.Status)
	}
	if calls.Load() != 0 {
		t.Fatalf("provider called %d times for a registry miss", calls.Load())
	}
}

func TestResolveEmptyPathIsNoPolyline(t *testing.T) {
	reg := testRegistry()

	provider := providerFunc(func(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteLeg, error) {
		return ports.RouteLeg{DistanceKm: 10, DurationSeconds: 600}, nil
	})
	agg := NewSegmentAggregator(reg, provider, nil)

	resolved := agg.Resolve(context.Background(), domain.Segment{From: "Riyadh", To: "Jeddah"})
	if resolved.Status != domain.StatusNoPolyline {
		t.Fatalf("status = %q, want NO_POLYLINE", resolved.Status)
	}
}

func TestFingerprint(t *testing.T) {
	a := []domain.Segment{{From: "A", To: "B"}, {From: "B", To: "C"}}
	b := []domain.Segment{{From: "B", To: "C"}, {From: "A", To: "B"}}
	c := []domain.Segment{{From: "A", To: "B"}}

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("fingerprint should not depend on segment order")
	}
	if Fingerprint(a) == Fingerprint(c) {
		t.Error("different segment sets should have different fingerprints")
	}
}

type fakeSegmentCache struct {
	hits   domain.SegmentMap
	stored domain.SegmentMap
}

func (f *fakeSegmentCache) GetMany(ctx context.Context, fingerprint string, keys []string) (domain.SegmentMap, error) {
	out := make(domain.SegmentMap)
	for _, k := range keys {
		if v, ok := f.hits[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (f *fakeSegmentCache) PutMany(ctx context.Context, fingerprint string, segments domain.SegmentMap) error {
	f.stored = segments
	return nil
}

func TestResolveSegmentsUsesCache(t *testing.T) {
	reg := testRegistry()

	cached := domain.ResolvedSegment{
		DistanceKm:      950,
		DurationSeconds: 33000,
		Path:            []domain.Coordinates{coord(reg, "Riyadh"), coord(reg, "Jeddah")},
	}
	fake := &fakeSegmentCache{hits: domain.SegmentMap{"Riyadh-Jeddah": cached}}

	var calls atomic.Int64
	provider := providerFunc(func(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteLeg, error) {
		calls.Add(1)
		return ports.RouteLeg{
			DistanceKm:      330,
			DurationSeconds: 12000,
			Path:            []domain.Coordinates{origin, destination},
		}, nil
	})

	agg := NewSegmentAggregator(reg, provider, fake)

	segments := []domain.Segment{
		{From: "Riyadh", To: "Jeddah"},
		{From: "Riyadh", To: "Qassim"},
	}
	result := agg.ResolveSegments(context.Background(), segments)

	if calls.Load() != 1 {
		t.Fatalf("provider called %d times, want 1 (cache hit should be skipped)", calls.Load())
	}
	if result["Riyadh-Jeddah"].DistanceKm != 950 {
		t.Errorf("cached distance = %f, want 950", result["Riyadh-Jeddah"].DistanceKm)
	}
	if result["Riyadh-Qassim"].DistanceKm != 330 {
		t.Errorf("fresh distance = %f, want 330", result["Riyadh-Qassim"].DistanceKm)
	}

	if _, ok := fake.stored["Riyadh-Qassim"]; !ok {
		t.Error("freshly resolved segment was not written back to the cache")
	}
	if _, ok := fake.stored["Riyadh-Jeddah"]; ok {
		t.Error("cache hit should not be re-stored")
	}
}
