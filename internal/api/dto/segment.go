package dto

type SegmentResponse struct {
	Key          string      `json:"key"`
	DistanceKm   float64     `json:"distance_km,omitempty"`
	DurationText string      `json:"duration_text,omitempty"`
	Path         [][]float64 `json:"path,omitempty"`
	Error        string      `json:"error,omitempty"`
}

type SegmentMapResponse struct {
	Segments []SegmentResponse `json:"segments"`
}
