package domain

// FuelType identifies one of the fuel grades the price API reports.
type FuelType string

const (
	FuelE5     FuelType = "e5"
	FuelE10    FuelType = "e10"
	FuelDiesel FuelType = "diesel"
)

// FuelPrice is the current price of a single fuel grade in EUR per liter.
type FuelPrice struct {
	Type  FuelType `json:"fuel_type"`
	Price float64  `json:"price"`
}

// Station is a fuel station inside the search radius with its current
// prices. Grades a station does not sell are absent from Prices.
type Station struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Brand      string      `json:"brand"`
	IsOpen     bool        `json:"is_open"`
	DistanceKm float64     `json:"distance_km"`
	Coord      Coordinate  `json:"coord"`
	Prices     []FuelPrice `json:"prices"`
}
