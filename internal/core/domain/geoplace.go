package domain

// GeoPlace is one candidate returned by the geocoding provider for a
// free-text query or a reverse lookup.
type GeoPlace struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}
