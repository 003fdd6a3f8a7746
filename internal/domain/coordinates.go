package domain

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// A named anchor point used to place synthetic warehouses.
type ReferenceLocation struct {
	City string
	Coordinates
}

// DefaultReferenceLocations returns the built-in list of ten Spanish cities.
// A fresh slice is returned on every call.
func DefaultReferenceLocations() []ReferenceLocation {
	return []ReferenceLocation{
		{City: "Madrid", Coordinates: Coordinates{Lat: 40.42, Lon: -3.70}},
		{City: "Barcelona", Coordinates: Coordinates{Lat: 41.38, Lon: 2.17}},
		{City: "Seville", Coordinates: Coordinates{Lat: 37.38, Lon: -5.99}},
		{City: "Valencia", Coordinates: Coordinates{Lat: 39.47, Lon: -0.38}},
		{City: "Bilbao", Coordinates: Coordinates{Lat: 43.26, Lon: -2.93}},
		{City: "Malaga", Coordinates: Coordinates{Lat: 36.72, Lon: -4.42}},
		{City: "Albacete", Coordinates: Coordinates{Lat: 38.99, Lon: -1.86}},
		{City: "Vigo", Coordinates: Coordinates{Lat: 42.24, Lon: -8.72}},
		{City: "Salamanca", Coordinates: Coordinates{Lat: 40.97, Lon: -5.66}},
		{City: "Toledo", Coordinates: Coordinates{Lat: 39.86, Lon: -4.03}},
	}
}
