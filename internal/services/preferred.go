package services

import (
	"context"
	"fleet-route-service/internal/domain"
)

// PreferredRouteResult pairs one preferred route with its resolution
// outcome for the dashboard's structured view.
type PreferredRouteResult struct {
	Route    domain.PreferredRoute
	Resolved domain.ResolvedSegment
}

// ResolvePreferredRoutes settles every preferred route's single leg in
// one pass. Legs shared between routes are resolved once; each route
// still gets its own result row.
func (a *SegmentAggregator) ResolvePreferredRoutes(ctx context.Context, routes []domain.PreferredRoute) []PreferredRouteResult {
	seen := make(map[string]struct{}, len(routes))
	segments := make([]domain.Segment, 0, len(routes))
	for _, route := range routes {
		seg := domain.Segment{From: route.From, To: route.To}
		if _, ok := seen[seg.Key()]; ok {
			continue
		}
		seen[seg.Key()] = struct{}{}
		segments = append(segments, seg)
	}

	resolved := a.ResolveSegments(ctx, segments)

	out := make([]PreferredRouteResult, 0, len(routes))
	for _, route := range routes {
		key := domain.Segment{From: route.From, To: route.To}.Key()
		out = append(out, PreferredRouteResult{Route: route, Resolved: resolved[key]})
	}
	return out
}
