package catalog

import "fleet-route-service/internal/domain"

// The fixed network of warehouses, branches and production sites the
// fleet serves. Coordinates are WGS84.
func Locations() []domain.Location {
	return []domain.Location{
		{ID: 1, Name: "Abha", Kind: domain.KindWarehouse, Coordinates: domain.Coordinates{Lat: 18.407914, Lon: 42.699846}},
		{ID: 2, Name: "Khamish", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 18.317878, Lon: 42.745247}},
		{ID: 3, Name: "Muhayil", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 18.537424, Lon: 42.049847}},
		{ID: 4, Name: "Ahsa", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 25.405083, Lon: 49.582190}},
		{ID: 5, Name: "Majmah", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 25.900330, Lon: 45.339990}},
		{ID: 6, Name: "Qassim", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 26.342694, Lon: 43.960116}},
		{ID: 7, Name: "Hafar", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 28.395567, Lon: 45.949369}},
		{ID: 8, Name: "Hail", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 27.5219, Lon: 41.6907}},
		{ID: 9, Name: "Jeddah", Kind: domain.KindWarehouse, Coordinates: domain.Coordinates{Lat: 21.4858, Lon: 39.1925}},
		{ID: 10, Name: "Jizan", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 16.959761, Lon: 42.670613}},
		{ID: 11, Name: "Jubail", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 26.994121, Lon: 49.645663}},
		{ID: 12, Name: "Khafji", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 28.415067, Lon: 48.481533}},
		{ID: 13, Name: "Nariyah", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 27.471517, Lon: 48.496856}},
		{ID: 14, Name: "Riyadh", Kind: domain.KindProduction, Coordinates: domain.Coordinates{Lat: 24.540079, Lon: 46.922444}},
		{ID: 15, Name: "Sakaka", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 29.929746, Lon: 40.180752}},
		{ID: 16, Name: "Madinah", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 24.350972, Lon: 39.515639}},
		{ID: 17, Name: "Dammam", Kind: domain.KindWarehouse, Coordinates: domain.Coordinates{Lat: 26.400646, Lon: 50.146750}},
		{ID: 18, Name: "Dawadmi", Kind: domain.KindBranch, Coordinates: domain.Coordinates{Lat: 24.496161, Lon: 44.374928}},
	}
}
