package handlers

import (
	"encoding/json"
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/catalog"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/services"
	"io"
	"net/http"
	"strings"
)

// RouteHandler serves the route catalogs and on-demand point-to-point
// resolution for the dashboard's custom view.
type RouteHandler struct {
	Registry    *catalog.Registry
	Aggregator  *services.SegmentAggregator
	Preferred   []domain.PreferredRoute
	Operational []domain.OperationalRoute
}

// ListPreferred resolves and returns the structured routes, optionally
// filtered by category. Rows that failed to resolve carry their error
// text in place of distance and duration.
func (h *RouteHandler) ListPreferred(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	category := strings.TrimSpace(r.URL.Query().Get("category"))

	routes := h.Preferred
	if category != "" && category != "all" {
		filtered := make([]domain.PreferredRoute, 0, len(routes))
		for _, route := range routes {
			if string(route.Category) == category {
				filtered = append(filtered, route)
			}
		}
		routes = filtered
	}

	results := h.Aggregator.ResolvePreferredRoutes(r.Context(), routes)

	res := dto.ListPreferredRoutesResponse{
		Routes: make([]dto.PreferredRouteResponse, 0, len(results)),
	}
	for _, result := range results {
		row := dto.PreferredRouteResponse{
			Category: string(result.Route.Category),
			From:     result.Route.From,
			To:       result.Route.To,
		}
		if result.Resolved.Failed() {
			row.Error = result.Resolved.Status.ErrorText()
		} else {
			row.DistanceKm = round1(result.Resolved.DistanceKm)
			row.DurationText = result.Resolved.DurationText()
			row.Path = pathPairs(result.Resolved.Path)
		}
		res.Routes = append(res.Routes, row)
	}

	writeJSON(w, r, http.StatusOK, res)
}

// ListOperational returns the operational catalog metadata, optionally
// filtered by owner.
func (h *RouteHandler) ListOperational(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	owner := strings.TrimSpace(r.URL.Query().Get("owner"))

	res := dto.ListOperationalRoutesResponse{
		Routes: make([]dto.OperationalRouteResponse, 0, len(h.Operational)),
	}
	for _, route := range h.Operational {
		if owner != "" && owner != "All" && route.Owner != owner {
			continue
		}
		res.Routes = append(res.Routes, dto.OperationalRouteResponse{
			RouteNumber:   route.RouteNumber,
			From:          route.From,
			To:            route.To,
			Also:          route.Also,
			DepartureTime: route.DepartureTime,
			ArrivalTime:   route.ArrivalTime,
			Schedule:      route.Schedule,
			VehicleType:   route.VehicleType,
			Owner:         route.Owner,
			Color:         route.Color,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Custom resolves a single driving route between two named locations.
func (h *RouteHandler) Custom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CustomRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}
	if from == to {
		writeError(w, r, http.StatusBadRequest, "from and to must differ")
		return
	}

	if _, ok := h.Registry.FindByName(from); !ok {
		writeError(w, r, http.StatusNotFound, "unknown location: "+from)
		return
	}
	if _, ok := h.Registry.FindByName(to); !ok {
		writeError(w, r, http.StatusNotFound, "unknown location: "+to)
		return
	}

	resolved := h.Aggregator.Resolve(r.Context(), domain.Segment{From: from, To: to})
	if resolved.Failed() {
		writeError(w, r, http.StatusBadGateway, resolved.Status.ErrorText())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CustomRouteResponse{
		From:         from,
		To:           to,
		DistanceKm:   round1(resolved.DistanceKm),
		DurationText: resolved.DurationText(),
		Path:         pathPairs(resolved.Path),
	})
}
