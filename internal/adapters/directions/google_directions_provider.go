package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/obs"
	"fleet-route-service/internal/ports"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GoogleDirectionsProvider implements DirectionsProvider against the
// Google Directions web service.
//
// It coordinates:
//   - Request signing via the API key
//   - External calls with retry/backoff, including rate-limit statuses
//   - Polyline decoding into coordinate paths
//
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	mode    string
}

func NewGoogleDirectionsProvider(apiKey string) (*GoogleDirectionsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("directions api key is empty")
	}

	provider := &GoogleDirectionsProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
		mode:    "driving",
	}

	return provider, nil
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// GetRoute resolves one driving leg between two coordinate points.
// Service-level failures come back as *ports.StatusError; OVER_QUERY_LIMIT
// is retried with backoff before being surfaced.
func (g *GoogleDirectionsProvider) GetRoute(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ ports.RouteLeg, err error) {
	defer obs.Time(ctx, "directions.GetRoute")(&err)

	const maxAttempts = 3
	backoff := 500 * time.Millisecond

	for attempt := 1; ; attempt++ {
		leg, err := g.fetchRoute(ctx, origin, destination)

		var se *ports.StatusError
		if err == nil || !errors.As(err, &se) || se.Status != domain.StatusOverQueryLimit || attempt == maxAttempts {
			return leg, err
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ports.RouteLeg{}, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}
}

func (g *GoogleDirectionsProvider) fetchRoute(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (ports.RouteLeg, error) {
	endpoint := g.baseURL + "/maps/api/directions/json"

	makeReq := func() (*http.Request, error) {
		req, err := g.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := url.Values{}
		q.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lon))
		q.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lon))
		q.Set("mode", g.mode)
		q.Set("key", g.apiKey)
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := g.doWithRetry(ctx, makeReq)
	if err != nil {
		return ports.RouteLeg{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteLeg{}, fmt.Errorf("decode directions response: %w", err)
	}

	if decoded.Status != "OK" {
		return ports.RouteLeg{}, &ports.StatusError{Status: domain.SegmentStatus(decoded.Status)}
	}

	if len(decoded.Routes) == 0 || decoded.Routes[0].OverviewPolyline.Points == "" {
		return ports.RouteLeg{}, &ports.StatusError{Status: domain.StatusNoPolyline}
	}

	route := decoded.Routes[0]
	path, err := DecodePath(route.OverviewPolyline.Points)
	if err != nil {
		return ports.RouteLeg{}, &ports.StatusError{Status: domain.StatusNoPolyline}
	}

	var totalMeters, totalSeconds float64
	for _, leg := range route.Legs {
		totalMeters += leg.Distance.Value
		totalSeconds += leg.Duration.Value
	}

	return ports.RouteLeg{
		DistanceKm:      totalMeters / 1000,
		DurationSeconds: totalSeconds,
		Path:            path,
	}, nil
}
