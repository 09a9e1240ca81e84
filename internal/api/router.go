package api

import (
	"fleet-route-service/internal/api/handlers"
	"fleet-route-service/internal/catalog"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	registry *catalog.Registry,
	aggregator *services.SegmentAggregator,
	store *services.SegmentStore,
	preferred []domain.PreferredRoute,
	operational []domain.OperationalRoute,
) http.Handler {
	mux := http.NewServeMux()

	locationHandler := &handlers.LocationHandler{Registry: registry}
	routeHandler := &handlers.RouteHandler{
		Registry:    registry,
		Aggregator:  aggregator,
		Preferred:   preferred,
		Operational: operational,
	}
	segmentHandler := &handlers.SegmentHandler{Store: store}
	summaryHandler := &handlers.SummaryHandler{Store: store, Routes: operational}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", locationHandler.List)
	mux.HandleFunc("/routes/preferred", routeHandler.ListPreferred)
	mux.HandleFunc("/routes/operational", routeHandler.ListOperational)
	mux.HandleFunc("/routes/operational/{n}/fuel", summaryHandler.RouteFuel)
	mux.HandleFunc("/routes/custom", routeHandler.Custom)
	mux.HandleFunc("/segments/operational", segmentHandler.List)
	mux.HandleFunc("/segments/operational/refresh", segmentHandler.Refresh)
	mux.HandleFunc("/summary/fleet", summaryHandler.Fleet)

	return loggingMiddleware(mux)
}
