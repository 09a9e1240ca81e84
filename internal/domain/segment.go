package domain

import "fmt"

// One directed point-to-point leg between two named locations.
// Identity is the ordered pair: A->B and B->A are distinct segments.
type Segment struct {
	From string
	To   string
}

// Key is the canonical map key for a segment.
func (s Segment) Key() string { return s.From + "-" + s.To }

// SegmentStatus is the per-segment failure vocabulary. An empty status
// means the segment resolved successfully. Values beyond the local
// sentinels come straight from the directions service.
type SegmentStatus string

const (
	StatusOK               SegmentStatus = ""
	StatusLocationNotFound SegmentStatus = "LOCATION_NOT_FOUND"
	StatusAPINotLoaded     SegmentStatus = "API_NOT_LOADED"
	StatusNoPolyline       SegmentStatus = "NO_POLYLINE"

	StatusNotFound         SegmentStatus = "NOT_FOUND"
	StatusZeroResults      SegmentStatus = "ZERO_RESULTS"
	StatusTooManyWaypoints SegmentStatus = "MAX_WAYPOINTS_EXCEEDED"
	StatusRouteTooLong     SegmentStatus = "MAX_ROUTE_LENGTH_EXCEEDED"
	StatusInvalidRequest   SegmentStatus = "INVALID_REQUEST"
	StatusOverQueryLimit   SegmentStatus = "OVER_QUERY_LIMIT"
	StatusRequestDenied    SegmentStatus = "REQUEST_DENIED"
	StatusUnknownError     SegmentStatus = "UNKNOWN_ERROR"
)

// ErrorText maps every failure status to a short user-presentable
// message. An unrecognized status is never treated as success.
func (s SegmentStatus) ErrorText() string {
	switch s {
	case StatusOK:
		return ""
	case StatusNotFound:
		return "Origin/dest not found."
	case StatusZeroResults:
		return "No route found."
	case StatusTooManyWaypoints:
		return "Too many waypoints."
	case StatusRouteTooLong:
		return "Route too long."
	case StatusInvalidRequest:
		return "Invalid request."
	case StatusOverQueryLimit:
		return "API limit reached."
	case StatusRequestDenied:
		return "Request denied."
	case StatusUnknownError:
		return "Unknown server error."
	case StatusAPINotLoaded:
		return "Directions API not available."
	case StatusNoPolyline:
		return "Route geometry missing."
	case StatusLocationNotFound:
		return "Internal: location missing."
	default:
		return fmt.Sprintf("Unexpected error (%s).", string(s))
	}
}

// The outcome of resolving one unique segment within one aggregation
// pass. Immutable after creation; recomputed on every fresh pass.
type ResolvedSegment struct {
	DistanceKm      float64
	DurationSeconds float64
	Path            []Coordinates
	Status          SegmentStatus
}

// Failed reports whether the segment carries a failure status.
func (r ResolvedSegment) Failed() bool { return r.Status != StatusOK }

// DurationText renders the duration the way the dashboard displays it.
func (r ResolvedSegment) DurationText() string {
	return FormatDuration(r.DurationSeconds)
}

// SegmentMap holds one entry per unique segment of an aggregation pass,
// keyed by Segment.Key. Published maps are treated as immutable.
type SegmentMap map[string]ResolvedSegment

// FormatDuration renders seconds as "H hr M min", or "--" for
// negative or non-sensical input.
func FormatDuration(totalSeconds float64) string {
	if totalSeconds < 0 || totalSeconds != totalSeconds {
		return "--"
	}
	hours := int(totalSeconds) / 3600
	minutes := int(float64(int(totalSeconds)%3600)/60.0 + 0.5)
	if hours > 0 {
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}
