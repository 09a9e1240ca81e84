package directions

import (
	"fleet-route-service/internal/domain"
	"fmt"

	polyline "github.com/twpayne/go-polyline"
)

// DecodePath decodes a Google encoded polyline (5-digit precision,
// zigzag signed deltas in 5-bit chunks) into a coordinate path.
func DecodePath(encoded string) ([]domain.Coordinates, error) {
	if encoded == "" {
		return nil, nil
	}

	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("decode polyline: %d trailing bytes", len(rest))
	}

	path := make([]domain.Coordinates, 0, len(coords))
	for _, c := range coords {
		path = append(path, domain.Coordinates{Lat: c[0], Lon: c[1]})
	}
	return path, nil
}
