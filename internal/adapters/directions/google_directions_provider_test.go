package directions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GoogleDirectionsProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	provider, err := NewGoogleDirectionsProvider("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	provider.baseURL = srv.URL
	return provider
}

func TestNewGoogleDirectionsProviderRequiresKey(t *testing.T) {
	if _, err := NewGoogleDirectionsProvider(""); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestGetRouteParsesResponse(t *testing.T) {
	var gotQuery atomic.Value
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		fmt.Fprint(w, `{
			"status": "OK",
			"routes": [{
				"overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC_mqNvxq`+"`"+`@"},
				"legs": [
					{"distance": {"value": 400000}, "duration": {"value": 3600}},
					{"distance": {"value": 550000}, "duration": {"value": 5400}}
				]
			}]
		}`)
	})

	origin := domain.Coordinates{Lat: 24.540079, Lon: 46.922444}
	destination := domain.Coordinates{Lat: 21.4858, Lon: 39.1925}

	leg, err := provider.GetRoute(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(leg.DistanceKm-950) > 1e-9 {
		t.Errorf("DistanceKm = %f, want 950", leg.DistanceKm)
	}
	if leg.DurationSeconds != 9000 {
		t.Errorf("DurationSeconds = %f, want 9000", leg.DurationSeconds)
	}
	if len(leg.Path) != 3 {
		t.Errorf("expected 3 path points, got %d", len(leg.Path))
	}

	q := gotQuery.Load().(url.Values)
	if got := q.Get("origin"); got != "24.540079,46.922444" {
		t.Errorf("origin query = %q", got)
	}
	if got := q.Get("mode"); got != "driving" {
		t.Errorf("mode query = %q", got)
	}
	if got := q.Get("key"); got != "test-key" {
		t.Errorf("key query = %q", got)
	}
}

func TestGetRouteServiceStatusBecomesStatusError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "routes": []}`)
	})

	_, err := provider.GetRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{})

	var se *ports.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ports.StatusError, got %v", err)
	}
	if se.Status != domain.StatusZeroResults {
		t.Errorf("status = %s, want %s", se.Status, domain.StatusZeroResults)
	}
}

func TestGetRouteMissingPolyline(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "OK", "routes": [{"overview_polyline": {"points": ""}, "legs": []}]}`)
	})

	_, err := provider.GetRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{})

	var se *ports.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ports.StatusError, got %v", err)
	}
	if se.Status != domain.StatusNoPolyline {
		t.Errorf("status = %s, want %s", se.Status, domain.StatusNoPolyline)
	}
}

func TestGetRouteRetriesOverQueryLimit(t *testing.T) {
	var calls atomic.Int32
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			fmt.Fprint(w, `{"status": "OVER_QUERY_LIMIT", "routes": []}`)
			return
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"routes": [{
				"overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC_mqNvxq`+"`"+`@"},
				"legs": [{"distance": {"value": 1000}, "duration": {"value": 60}}]
			}]
		}`)
	})

	leg, err := provider.GetRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 calls, got %d", calls.Load())
	}
	if leg.DistanceKm != 1 {
		t.Errorf("DistanceKm = %f, want 1", leg.DistanceKm)
	}
}

func TestGetRouteRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"routes": [{
				"overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC_mqNvxq`+"`"+`@"},
				"legs": [{"distance": {"value": 1000}, "duration": {"value": 60}}]
			}]
		}`)
	})

	if _, err := provider.GetRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 calls, got %d", calls.Load())
	}
}
