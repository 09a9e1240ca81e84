package handlers

import (
	"context"
	"errors"
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/services"
	"log"
	"net/http"
	"sort"
	"time"
)

// Outer bound for a background aggregation pass, sized for a cold
// cache against the external directions service.
const refreshTimeout = 2 * time.Minute

// SegmentHandler exposes the published operational segment map and
// the refresh trigger.
type SegmentHandler struct {
	Store *services.SegmentStore
}

// List returns the last published segment map. When no pass has
// completed yet, a background pass is kicked off and 202 is returned
// so the dashboard retries.
func (h *SegmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	segments, ok := h.Store.Current()
	if !ok {
		h.startRefresh()
		writeJSON(w, r, http.StatusAccepted, map[string]string{"status": "calculating"})
		return
	}

	res := dto.SegmentMapResponse{
		Segments: make([]dto.SegmentResponse, 0, len(segments)),
	}
	for key, seg := range segments {
		row := dto.SegmentResponse{Key: key}
		if seg.Failed() {
			row.Error = seg.Status.ErrorText()
		} else {
			row.DistanceKm = round1(seg.DistanceKm)
			row.DurationText = seg.DurationText()
			row.Path = pathPairs(seg.Path)
		}
		res.Segments = append(res.Segments, row)
	}
	// Keys are unordered in the map; sort for stable payloads.
	sort.Slice(res.Segments, func(i, j int) bool {
		return res.Segments[i].Key < res.Segments[j].Key
	})

	writeJSON(w, r, http.StatusOK, res)
}

// Refresh starts a new aggregation pass unless one is in flight.
func (h *SegmentHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Store.Running() {
		writeError(w, r, http.StatusConflict, "aggregation pass already in flight")
		return
	}

	h.startRefresh()
	writeJSON(w, r, http.StatusAccepted, map[string]string{"status": "started"})
}

// startRefresh runs a pass detached from the request lifecycle; the
// pass settles all segments even if the caller goes away.
func (h *SegmentHandler) startRefresh() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := h.Store.Refresh(ctx); err != nil && !errors.Is(err, services.ErrPassInFlight) {
			log.Printf("segment refresh failed: %v", err)
		}
	}()
}
