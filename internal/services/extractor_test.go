package services

import (
	"fleet-route-service/internal/catalog"
	"fleet-route-service/internal/domain"
	"testing"
)

func testRegistry() *catalog.Registry {
	return catalog.NewRegistry([]domain.Location{
		{ID: 1, Name: "Riyadh", Kind: domain.KindProduction, Coordinates: domain.Coordinates{Lat: 24.54, Lon: 46.92}},
		{ID: 2, Name: "Jeddah", Kind: domain.KindWarehouse, Coordinates: domain.Coordinates{Lat: 21.49, Lon: 39.19}},
		{ID: 3, Name: "Qassim", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 26.34, Lon: 43.96}},
		{ID: 4, Name: "Majmah", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 25.90, Lon: 45.34}},
		{ID: 5, Name: "Hail", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 27.52, Lon: 41.69}},
	})
}

func TestExtractSegmentsSingleLeg(t *testing.T) {
	reg := testRegistry()

	route := domain.OperationalRoute{RouteNumber: 1, From: "Riyadh", To: "Jeddah"}
	segments := ExtractSegments(reg, route)

	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0] != (domain.Segment{From: "Riyadh", To: "Jeddah"}) {
		t.Fatalf("unexpected segment %+v", segments[0])
	}
}

func TestExtractSegmentsMissingLocation(t *testing.T) {
	reg := testRegistry()

	route := domain.OperationalRoute{RouteNumber: 2, From: "Riyadh", To: "Atlantis"}
	segments := ExtractSegments(reg, route)

	if len(segments) != 0 {
		t.Fatalf("expected 0 segments for unknown destination, got %d", len(segments))
	}
}

func TestExtractSegmentsSecondLegDefault(t *testing.T) {
	reg := testRegistry()

	route := domain.OperationalRoute{RouteNumber: 3, From: "Riyadh", To: "Qassim", Also: "Majmah"}
	segments := ExtractSegments(reg, route)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[1] != (domain.Segment{From: "Qassim", To: "Majmah"}) {
		t.Fatalf("second leg should chain from To, got %+v", segments[1])
	}
}

func TestExtractSegmentsSecondLegOverride(t *testing.T) {
	reg := testRegistry()

	route := domain.OperationalRoute{
		RouteNumber:       9,
		From:              "Riyadh",
		To:                "Qassim",
		Also:              "Majmah",
		SecondLegOverride: &domain.Segment{From: "Majmah", To: "Qassim"},
	}
	segments := ExtractSegments(reg, route)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[1] != (domain.Segment{From: "Majmah", To: "Qassim"}) {
		t.Fatalf("override not honored, got %+v", segments[1])
	}
}

func TestExtractSegmentsSecondLegMissingLocation(t *testing.T) {
	reg := testRegistry()

	route := domain.OperationalRoute{RouteNumber: 4, From: "Riyadh", To: "Qassim", Also: "Atlantis"}
	segments := ExtractSegments(reg, route)

	// Primary leg survives; second leg is a soft skip.
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
}

func TestUniqueSegmentsDedupAndDirection(t *testing.T) {
	reg := testRegistry()

	routes := []domain.OperationalRoute{
		{RouteNumber: 1, From: "Riyadh", To: "Jeddah"},
		{RouteNumber: 2, From: "Riyadh", To: "Jeddah"},
		{RouteNumber: 3, From: "Jeddah", To: "Riyadh"},
	}

	segments := UniqueSegments(reg, routes)
	if len(segments) != 2 {
		t.Fatalf("expected 2 unique segments, got %d", len(segments))
	}

	// A->B and B->A stay distinct, in first-occurrence order.
	if segments[0].Key() != "Riyadh-Jeddah" {
		t.Errorf("first key = %q, want Riyadh-Jeddah", segments[0].Key())
	}
	if segments[1].Key() != "Jeddah-Riyadh" {
		t.Errorf("second key = %q, want Jeddah-Riyadh", segments[1].Key())
	}
}
