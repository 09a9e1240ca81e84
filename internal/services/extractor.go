package services

import (
	"fleet-route-service/internal/domain"
	"log"
)

// LocationFinder is the registry lookup the extractor and aggregator
// need. Satisfied by catalog.Registry.
type LocationFinder interface {
	FindByName(name string) (domain.Location, bool)
}

// ExtractSegments decomposes one operational route into its ordered
// point-to-point segments (0, 1 or 2).
//
// The primary leg is From->To. A route with an "also" drop-off gains a
// second leg, To->Also by default, or the route's explicit override
// when the catalog pins the second leg to a shared trunk. A leg whose
// endpoints do not both resolve through the registry is omitted with a
// warning; extraction never fails hard.
//
// Extraction is pure: no network activity, so the aggregator can call
// it repeatedly to build a deduplicated segment set.
func ExtractSegments(reg LocationFinder, route domain.OperationalRoute) []domain.Segment {
	segments := make([]domain.Segment, 0, 2)

	_, fromOK := reg.FindByName(route.From)
	_, toOK := reg.FindByName(route.To)
	if fromOK && toOK {
		segments = append(segments, domain.Segment{From: route.From, To: route.To})
	} else {
		log.Printf("extract segments: route=%d missing location for primary leg %s -> %s", route.RouteNumber, route.From, route.To)
	}

	if !route.HasSecondLeg() {
		return segments
	}

	second := domain.Segment{From: route.To, To: route.Also}
	if route.SecondLegOverride != nil {
		second = *route.SecondLegOverride
	}

	_, secondFromOK := reg.FindByName(second.From)
	_, secondToOK := reg.FindByName(second.To)
	if secondFromOK && secondToOK {
		segments = append(segments, second)
	} else {
		log.Printf("extract segments: route=%d missing location for second leg %s -> %s", route.RouteNumber, second.From, second.To)
	}

	return segments
}

// UniqueSegments collects the deduplicated union of segments across a
// route set, keyed by Segment.Key, preserving first-occurrence order.
func UniqueSegments(reg LocationFinder, routes []domain.OperationalRoute) []domain.Segment {
	seen := make(map[string]struct{})
	out := make([]domain.Segment, 0, len(routes))
	for _, route := range routes {
		for _, seg := range ExtractSegments(reg, route) {
			if _, ok := seen[seg.Key()]; ok {
				continue
			}
			seen[seg.Key()] = struct{}{}
			out = append(out, seg)
		}
	}
	return out
}
