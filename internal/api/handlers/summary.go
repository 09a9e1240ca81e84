package handlers

import (
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/services"
	"net/http"
	"strconv"
)

// SummaryHandler serves the fleet-wide cost summary and the per-route
// weekly estimate for the hover-detail panel.
type SummaryHandler struct {
	Store  *services.SegmentStore
	Routes []domain.OperationalRoute
}

// Fleet returns the weekly/monthly distance and fuel-cost rollup. A
// summary with zero contributing routes is a valid response with an
// explicit message, not an error.
func (h *SummaryHandler) Fleet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	segments, ok := h.Store.Current()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "segment data not available yet")
		return
	}

	summary := services.Summarize(h.Routes, segments)

	res := dto.FleetSummaryResponse{
		TotalWeeklyKm:          round1(summary.TotalWeeklyKm),
		TotalWeeklyCostMinSAR:  round2(summary.TotalWeeklyCostMinSAR),
		TotalWeeklyCostMaxSAR:  round2(summary.TotalWeeklyCostMaxSAR),
		TotalMonthlyKm:         round1(summary.TotalMonthlyKm),
		TotalMonthlyCostMinSAR: round2(summary.TotalMonthlyCostMinSAR),
		TotalMonthlyCostMaxSAR: round2(summary.TotalMonthlyCostMaxSAR),
		ContributingRouteCount: summary.ContributingRouteCount,
	}
	if summary.ContributingRouteCount == 0 {
		res.Message = "no operational routes with defined weekly trips and distances"
	}

	writeJSON(w, r, http.StatusOK, res)
}

// RouteFuel returns the weekly fuel estimate for one operational route.
func (h *SummaryHandler) RouteFuel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	routeNumber, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid route number")
		return
	}

	var route *domain.OperationalRoute
	for i := range h.Routes {
		if h.Routes[i].RouteNumber == routeNumber {
			route = &h.Routes[i]
			break
		}
	}
	if route == nil {
		writeError(w, r, http.StatusNotFound, "unknown route number")
		return
	}

	segments, ok := h.Store.Current()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "segment data not available yet")
		return
	}

	est, ok := services.EstimateWeekly(*route, segments)
	if !ok {
		writeError(w, r, http.StatusNotFound, "route does not contribute to the fuel summary")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.WeeklyEstimateResponse{
		RouteNumber:   route.RouteNumber,
		Destination:   est.Destination,
		TripsPerWeek:  est.TripsPerWeek,
		SingleTripKm:  round1(est.SingleTripKm),
		TotalWeeklyKm: round1(est.TotalWeeklyKm),
		CostMinSAR:    round2(est.CostMinSAR),
		CostMaxSAR:    round2(est.CostMaxSAR),
	})
}
