package dto

type FleetSummaryResponse struct {
	TotalWeeklyKm          float64 `json:"total_weekly_km"`
	TotalWeeklyCostMinSAR  float64 `json:"total_weekly_cost_min_sar"`
	TotalWeeklyCostMaxSAR  float64 `json:"total_weekly_cost_max_sar"`
	TotalMonthlyKm         float64 `json:"total_monthly_km"`
	TotalMonthlyCostMinSAR float64 `json:"total_monthly_cost_min_sar"`
	TotalMonthlyCostMaxSAR float64 `json:"total_monthly_cost_max_sar"`
	ContributingRouteCount int     `json:"contributing_route_count"`
	Message                string  `json:"message,omitempty"`
}

type WeeklyEstimateResponse struct {
	RouteNumber   int     `json:"route_number"`
	Destination   string  `json:"destination"`
	TripsPerWeek  int     `json:"trips_per_week"`
	SingleTripKm  float64 `json:"single_trip_km"`
	TotalWeeklyKm float64 `json:"total_weekly_km"`
	CostMinSAR    float64 `json:"cost_min_sar"`
	CostMaxSAR    float64 `json:"cost_max_sar"`
}
