package services

import (
	"fleet-route-service/internal/domain"
)

// Fuel economics for the 5-11t trailer fleet. Prices are Riyadh pump
// prices; mileage bounds reflect vehicle efficiency variance, not
// uncertainty in distance.
const (
	DieselPriceSARPerLiter = 1.66
	MileageKmPerLiterMin   = 4.0
	MileageKmPerLiterMax   = 6.0
	WeeksPerMonth          = 4.3333
)

// EstimateWeekly computes the weekly fuel-cost estimate for a single
// operational route against a settled segment map.
//
// A route participates only when its primary segment resolved with a
// positive distance and its schedule parses to a positive weekly trip
// count; otherwise ok is false. Dividing weekly distance by the larger
// mileage figure gives the smaller fuel need, so CostMinSAR <=
// CostMaxSAR always holds for participating routes.
func EstimateWeekly(route domain.OperationalRoute, segments domain.SegmentMap) (domain.WeeklyEstimate, bool) {
	primary, ok := segments[domain.Segment{From: route.From, To: route.To}.Key()]
	if !ok || primary.Failed() || primary.DistanceKm <= 0 {
		return domain.WeeklyEstimate{}, false
	}

	trips := ParseTripsPerWeek(route.Schedule)
	if trips <= 0 {
		return domain.WeeklyEstimate{}, false
	}

	weeklyKm := primary.DistanceKm * float64(trips)
	minLiters := weeklyKm / MileageKmPerLiterMax
	maxLiters := weeklyKm / MileageKmPerLiterMin

	return domain.WeeklyEstimate{
		Destination:   route.To,
		TripsPerWeek:  trips,
		SingleTripKm:  primary.DistanceKm,
		TotalWeeklyKm: weeklyKm,
		CostMinSAR:    minLiters * DieselPriceSARPerLiter,
		CostMaxSAR:    maxLiters * DieselPriceSARPerLiter,
	}, true
}

// Summarize rolls per-route weekly estimates up into the fleet-wide
// weekly and monthly figures. Routes that do not participate are
// silently excluded; zero contributing routes yields a valid all-zero
// summary rather than an error.
func Summarize(routes []domain.OperationalRoute, segments domain.SegmentMap) domain.FleetSummary {
	var summary domain.FleetSummary

	for _, route := range routes {
		est, ok := EstimateWeekly(route, segments)
		if !ok {
			continue
		}
		summary.TotalWeeklyKm += est.TotalWeeklyKm
		summary.TotalWeeklyCostMinSAR += est.CostMinSAR
		summary.TotalWeeklyCostMaxSAR += est.CostMaxSAR
		summary.ContributingRouteCount++
	}

	summary.TotalMonthlyKm = summary.TotalWeeklyKm * WeeksPerMonth
	summary.TotalMonthlyCostMinSAR = summary.TotalWeeklyCostMinSAR * WeeksPerMonth
	summary.TotalMonthlyCostMaxSAR = summary.TotalWeeklyCostMaxSAR * WeeksPerMonth

	return summary
}
