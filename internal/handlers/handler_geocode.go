package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripflow/tripflow_backend/internal/apperrors"
	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
	"github.com/tripflow/tripflow_backend/internal/middleware"
)

// geocodeHandler proxies place search and reverse lookup to the geocoding
// provider, keeping the provider's URL and usage policy on the server side.
type geocodeHandler struct {
	geocoder portssvc.GeocoderSvcFacade
}

func newGeocodeHandler(g portssvc.GeocoderSvcFacade) *geocodeHandler {
	return &geocodeHandler{geocoder: g}
}

func registerGeocodeRoutes(rg *gin.RouterGroup, g portssvc.GeocoderSvcFacade) {
	h := newGeocodeHandler(g)

	geocode := rg.Group("/geocode")
	{
		geocode.GET("/search", h.search)
		geocode.GET("/reverse", h.reverse)
	}
}

func (h *geocodeHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.GeocodeSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for geocode search", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	places, err := h.geocoder.Search(c.Request.Context(), query.Query)
	if err != nil {
		logger.Error("Geocoder search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Geocoding provider unavailable"})
		return
	}

	resp := dto.ListGeoPlacesResponse{Results: make([]dto.GeoPlaceResponse, len(places))}
	for i := range places {
		resp.Results[i] = dto.ToGeoPlaceResponse(&places[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *geocodeHandler) reverse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.GeocodeReverseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for reverse geocode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	place, err := h.geocoder.Reverse(c.Request.Context(), query.Latitude, query.Longitude)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No place found at these coordinates"})
			return
		}
		logger.Error("Geocoder reverse lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Geocoding provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGeoPlaceResponse(place))
}
