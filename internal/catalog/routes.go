package catalog

import "fleet-route-service/internal/domain"

// Preferred structured routes, grouped by region for the dashboard
// filter. One directed leg each.
func PreferredRoutes() []domain.PreferredRoute {
	return []domain.PreferredRoute{
		{Category: domain.CategoryMain, From: "Riyadh", To: "Jeddah"},
		{Category: domain.CategoryMain, From: "Riyadh", To: "Abha"},
		{Category: domain.CategoryMain, From: "Riyadh", To: "Dammam"},
		{Category: domain.CategoryNorthWest, From: "Jeddah", To: "Madinah"},
		{Category: domain.CategorySouthWest, From: "Abha", To: "Khamish"},
		{Category: domain.CategorySouthWest, From: "Khamish", To: "Jizan"},
		{Category: domain.CategorySouthWest, From: "Jizan", To: "Muhayil"},
		{Category: domain.CategorySouthWest, From: "Muhayil", To: "Abha"},
		{Category: domain.CategoryCentral, From: "Riyadh", To: "Dawadmi"},
		{Category: domain.CategoryCentral, From: "Dawadmi", To: "Majmah"},
		{Category: domain.CategoryCentral, From: "Majmah", To: "Qassim"},
		{Category: domain.CategoryCentral, From: "Qassim", To: "Hail"},
		{Category: domain.CategoryCentral, From: "Hail", To: "Sakaka"},
		{Category: domain.CategoryEastern, From: "Dammam", To: "Ahsa"},
		{Category: domain.CategoryEastern, From: "Ahsa", To: "Nariyah"},
		{Category: domain.CategoryEastern, From: "Nariyah", To: "Hafar"},
		{Category: domain.CategoryEastern, From: "Hafar", To: "Khafji"},
		{Category: domain.CategoryEastern, From: "Khafji", To: "Jubail"},
		{Category: domain.CategoryEastern, From: "Jubail", To: "Dammam"},
	}
}

// aliases reconciles location names used by the scheduling spreadsheet
// with the names in the location catalog. Applied once when the
// operational catalog is built; the registry itself stays exact-match.
var aliases = map[string]string{
	"Hasa": "Ahsa",
}

func canonicalName(name string) string {
	if mapped, ok := aliases[name]; ok {
		return mapped
	}
	return name
}

// Display colors assigned to operational routes in catalog order.
var routeColors = []string{
	"#e6194B", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#fabebe",
	"#008080", "#e6beff", "#9A6324", "#ffd8b1", "#000075",
}

// Current operational retail routes as scheduled. Routes 7, 8 and 9
// are multi-drop routes whose "also" destination sits on a shared
// trunk leg; their second leg is pinned with an explicit override
// instead of chaining from To.
func OperationalRoutes() []domain.OperationalRoute {
	routes := []domain.OperationalRoute{
		{RouteNumber: 1, From: "Riyadh", To: "Jeddah", DepartureTime: "10:30pm", ArrivalTime: "07:30pm", Schedule: "6 Trips / Week", VehicleType: "Trailer", Owner: "Other"},
		{RouteNumber: 2, From: "Riyadh", To: "Dammam", DepartureTime: "01:00am", ArrivalTime: "11:00pm", Schedule: "6 Trips / Week", VehicleType: "Trailer", Owner: "Other"},
		{RouteNumber: 3, From: "Riyadh", To: "Hasa", DepartureTime: "10:30am", ArrivalTime: "05:00pm", Schedule: "6 Trips / Week", VehicleType: "09 Ton / Masdar", Owner: "MAH"},
		{RouteNumber: 4, From: "Riyadh", To: "Hafar", DepartureTime: "05:00am", ArrivalTime: "01:00pm", Schedule: "3 Trips / Week", VehicleType: "05 Ton / Yelo", Owner: "MAH"},
		{RouteNumber: 5, From: "Riyadh", To: "Hafar", DepartureTime: "05:00am", ArrivalTime: "03:00pm", Schedule: "3 Trips / Week", VehicleType: "11 Ton / Rent", Owner: "Other"},
		{RouteNumber: 6, From: "Riyadh", To: "Dawadmi", DepartureTime: "11:00am", ArrivalTime: "06:00pm", Schedule: "6 Trips / Week", VehicleType: "11 Ton / Rent", Owner: "Other"},
		{RouteNumber: 7, From: "Riyadh", To: "Hail", Also: "Sakaka", SecondLegOverride: &domain.Segment{From: "Hail", To: "Sakaka"}, DepartureTime: "04:00am", ArrivalTime: "02:30pm", Schedule: "3 Trips / Week", VehicleType: "11 Ton / Yelo", Owner: "MAH"},
		{RouteNumber: 8, From: "Riyadh", To: "Hail", Also: "Sakaka", SecondLegOverride: &domain.Segment{From: "Hail", To: "Sakaka"}, DepartureTime: "04:00am", ArrivalTime: "12:00pm", Schedule: "3 Trips / Week", VehicleType: "05 Ton / Yelo", Owner: "MAH"},
		{RouteNumber: 9, From: "Riyadh", To: "Qassim", Also: "Majmah", SecondLegOverride: &domain.Segment{From: "Majmah", To: "Qassim"}, DepartureTime: "05:00am", ArrivalTime: "01:00pm", Schedule: "6 Trips / Week", VehicleType: "Trailer", Owner: "Other"},
		{RouteNumber: 10, From: "Riyadh", To: "Abha", DepartureTime: "07:00PM", ArrivalTime: "09:00AM", Schedule: "3 Trips / Week", VehicleType: "Trailer", Owner: "Other"},
		{RouteNumber: 11, From: "Riyadh", To: "Jizan", DepartureTime: "06:00PM", ArrivalTime: "04:00AM", Schedule: "3 Trips / Week", VehicleType: "11 Ton / Rent ( If load more)", Owner: "Other"},
		{RouteNumber: 12, From: "Riyadh", To: "Madinah", DepartureTime: "07:00PM", ArrivalTime: "07:00PM", Schedule: "3 Trips / week", VehicleType: "05 Ton / Yelo", Owner: "MAH"},
		{RouteNumber: 13, From: "Hail", To: "Sakaka", DepartureTime: "05:00 PM", ArrivalTime: "04:00 AM", Schedule: "6 Trips / Per Week", VehicleType: "05 Ton / Yelo", Owner: "MAH"},
		{RouteNumber: 14, From: "Dammam", To: "Jubail", DepartureTime: "01:30pm", ArrivalTime: "03:00pm", Schedule: "6 Trips / Week", VehicleType: "11 Ton / Yelo", Owner: "MAH"},
		{RouteNumber: 15, From: "Abha", To: "Jizan", DepartureTime: "07:00 PM", ArrivalTime: "05:00 AM", Schedule: "6 Trips / Per Week", VehicleType: "11 Ton / Yelo", Owner: "MAH"},
	}

	for i := range routes {
		routes[i].From = canonicalName(routes[i].From)
		routes[i].To = canonicalName(routes[i].To)
		routes[i].Also = canonicalName(routes[i].Also)
		if o := routes[i].SecondLegOverride; o != nil {
			routes[i].SecondLegOverride = &domain.Segment{
				From: canonicalName(o.From),
				To:   canonicalName(o.To),
			}
		}
		routes[i].Color = routeColors[i%len(routeColors)]
	}

	return routes
}
