package domain

// RouteCategory groups preferred routes for filtering on the dashboard.
type RouteCategory string

const (
	CategoryMain      RouteCategory = "main"
	CategoryNorthWest RouteCategory = "north_west"
	CategorySouthWest RouteCategory = "south_west"
	CategoryCentral   RouteCategory = "central"
	CategoryEastern   RouteCategory = "eastern"
)

// A preferred ("structured") route: one directed leg between two named
// locations, grouped by region. Immutable static configuration.
type PreferredRoute struct {
	Category RouteCategory
	From     string
	To       string
}

// An operational trucking route as currently scheduled.
//
// Also names a second drop-off for multi-stop routes. The second leg
// normally chains from To, but a few catalog entries denote a waypoint
// on a shared trunk leg instead; those carry an explicit
// SecondLegOverride rather than encoding the exception in control flow.
type OperationalRoute struct {
	RouteNumber       int
	From              string
	To                string
	Also              string
	SecondLegOverride *Segment
	DepartureTime     string
	ArrivalTime       string
	Schedule          string
	VehicleType       string
	Owner             string
	Color             string
}

// HasSecondLeg reports whether the route decomposes into two segments.
func (r OperationalRoute) HasSecondLeg() bool { return r.Also != "" }
