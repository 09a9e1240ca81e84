package dto

type LocationResponse struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Kind string  `json:"kind"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
