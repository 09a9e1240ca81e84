package handlers

import (
	"encoding/json"
	"fleet-route-service/internal/domain"
	"log"
	"math"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func pathPairs(path []domain.Coordinates) [][]float64 {
	out := make([][]float64, 0, len(path))
	for _, c := range path {
		out = append(out, c.LatLng())
	}
	return out
}

// round2 keeps SAR amounts presentable without pushing formatting into
// the services layer.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
