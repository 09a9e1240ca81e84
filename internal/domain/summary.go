package domain

// Rolled-up weekly and monthly distance and fuel-cost figures across
// all contributing operational routes. Derived purely from a published
// SegmentMap plus route schedule metadata; recomputed whenever the
// inputs change. A summary with ContributingRouteCount == 0 is a valid
// "no data" state, not an error.
type FleetSummary struct {
	TotalWeeklyKm          float64
	TotalWeeklyCostMinSAR  float64
	TotalWeeklyCostMaxSAR  float64
	TotalMonthlyKm         float64
	TotalMonthlyCostMinSAR float64
	TotalMonthlyCostMaxSAR float64
	ContributingRouteCount int
}

// Weekly fuel-cost estimate for a single operational route, shown in
// the hover-detail panel. Same formula as the fleet summary, without
// accumulation.
type WeeklyEstimate struct {
	Destination   string
	TripsPerWeek  int
	SingleTripKm  float64
	TotalWeeklyKm float64
	CostMinSAR    float64
	CostMaxSAR    float64
}
