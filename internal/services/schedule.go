package services

import (
	"regexp"
	"strconv"
)

// Matches schedule strings like "6 Trips / Week" and "3 Trips / Per Week".
var tripsPattern = regexp.MustCompile(`(?i)(\d+)\s*Trips\s*/\s*(?:Per\s*)?Week`)

// ParseTripsPerWeek extracts the weekly trip count from the free-text
// schedule column. Text that does not match the pattern ("Daily",
// empty, malformed) yields 0, which excludes the route from cost
// aggregation.
func ParseTripsPerWeek(schedule string) int {
	m := tripsPattern.FindStringSubmatch(schedule)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
