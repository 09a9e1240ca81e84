package dto

type PreferredRouteResponse struct {
	Category     string      `json:"category"`
	From         string      `json:"from"`
	To           string      `json:"to"`
	DistanceKm   float64     `json:"distance_km,omitempty"`
	DurationText string      `json:"duration_text,omitempty"`
	Path         [][]float64 `json:"path,omitempty"`
	Error        string      `json:"error,omitempty"`
}

type ListPreferredRoutesResponse struct {
	Routes []PreferredRouteResponse `json:"routes"`
}

type OperationalRouteResponse struct {
	RouteNumber   int    `json:"route_number"`
	From          string `json:"from"`
	To            string `json:"to"`
	Also          string `json:"also,omitempty"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Schedule      string `json:"schedule"`
	VehicleType   string `json:"vehicle_type"`
	Owner         string `json:"owner"`
	Color         string `json:"color"`
}

type ListOperationalRoutesResponse struct {
	Routes []OperationalRouteResponse `json:"routes"`
}

type CustomRouteRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type CustomRouteResponse struct {
	From         string      `json:"from"`
	To           string      `json:"to"`
	DistanceKm   float64     `json:"distance_km"`
	DurationText string      `json:"duration_text"`
	Path         [][]float64 `json:"path"`
}
