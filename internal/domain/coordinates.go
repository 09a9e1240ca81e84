package domain

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lat, lon] for map path payloads.
func (c Coordinates) LatLng() []float64 { return []float64{c.Lat, c.Lon} }
