package handlers

import (
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/catalog"
	"net/http"
)

// LocationHandler exposes the static location catalog.
type LocationHandler struct {
	Registry *catalog.Registry
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	locations := h.Registry.Locations()
	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(locations)),
	}
	for _, loc := range locations {
		res.Locations = append(res.Locations, dto.LocationResponse{
			ID:   loc.ID,
			Name: loc.Name,
			Kind: string(loc.Kind),
			Lat:  loc.Lat,
			Lng:  loc.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
