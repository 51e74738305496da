package dto

import "github.com/tripflow/tripflow_backend/internal/core/domain"

// GeocodeSearchQuery is the query payload for free-text geocoding.
type GeocodeSearchQuery struct {
	Query string `form:"q" binding:"required,min=3"`
}

// GeocodeReverseQuery is the query payload for reverse geocoding.
type GeocodeReverseQuery struct {
	Latitude  float64 `form:"lat" binding:"min=-90,max=90"`
	Longitude float64 `form:"lon" binding:"min=-180,max=180"`
}

// GeoPlaceResponse is the API shape of a geocoder candidate.
type GeoPlaceResponse struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// ListGeoPlacesResponse wraps a ranked candidate list.
type ListGeoPlacesResponse struct {
	Results []GeoPlaceResponse `json:"results"`
}

// ToGeoPlaceResponse maps a domain place to its API shape.
func ToGeoPlaceResponse(p *domain.GeoPlace) GeoPlaceResponse {
	return GeoPlaceResponse{
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		DisplayName: p.DisplayName,
	}
}
