package handlers

import "net/http"

// Health is the liveness probe. It reports the process is serving;
// segment data readiness is visible on the segments endpoint instead.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "fleet-route-service",
	})
}
