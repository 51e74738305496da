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

// tripHandler handles HTTP requests for trips and their nested collections.
type tripHandler struct {
	tripService      portssvc.TripSvcFacade
	stepService      portssvc.StepSvcFacade
	checklistService portssvc.ChecklistSvcFacade
}

func newTripHandler(ts portssvc.TripSvcFacade, ss portssvc.StepSvcFacade, cs portssvc.ChecklistSvcFacade) *tripHandler {
	return &tripHandler{tripService: ts, stepService: ss, checklistService: cs}
}

// registerTripRoutes registers trip CRUD plus the trip-scoped step and
// checklist collections.
func registerTripRoutes(rg *gin.RouterGroup, ts portssvc.TripSvcFacade, ss portssvc.StepSvcFacade, cs portssvc.ChecklistSvcFacade) {
	h := newTripHandler(ts, ss, cs)

	trips := rg.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/:tripID", h.getTrip)
		trips.PUT("/:tripID", h.updateTrip)
		trips.DELETE("/:tripID", h.deleteTrip)

		trips.POST("/:tripID/steps", h.createStep)
		trips.GET("/:tripID/steps", h.listSteps)
		trips.GET("/:tripID/steps/conflicts", h.checkStepConflicts)

		trips.POST("/:tripID/checklists", h.createChecklist)
		trips.GET("/:tripID/checklists", h.listChecklists)
	}
}

// respondTripError maps service errors for trip-scoped operations.
func respondTripError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action))
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Access to another user's resource denied", slog.String("action", action))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Service call failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		respondTripError(c, logger, err, "create trip")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trips, err := h.tripService.ListTripsByUser(c.Request.Context(), userID)
	if err != nil {
		respondTripError(c, logger, err, "list trips")
		return
	}

	resp := dto.ListTripsResponse{Trips: make([]dto.TripResponse, len(trips))}
	for i := range trips {
		resp.Trips[i] = dto.ToTripResponse(&trips[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *tripHandler) getTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tripID, err := pathID(c, "tripID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, err := h.tripService.GetTripByID(c.Request.Context(), tripID, userID)
	if err != nil {
		respondTripError(c, logger, err, "get trip")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

func (h *tripHandler) updateTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tripID, err := pathID(c, "tripID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), tripID, userID, req)
	if err != nil {
		respondTripError(c, logger, err, "update trip")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

func (h *tripHandler) deleteTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tripID, err := pathID(c, "tripID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Received request to delete trip", slog.Int64("trip_id", tripID))

	if err := h.tripService.DeleteTrip(c.Request.Context(), tripID, userID); err != nil {
		respondTripError(c, logger, err, "delete trip")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *tripHandler) createStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tripID, err := pathID(c, "tripID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStep", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	step, err := h.stepService.CreateStep(c.Request.Context(), tripID, userID, req)
	if err != nil {
		respondTripError(c, logger, err, "create step")
		return
	}

	c.JSON(http.StatusCreated, dto.ToStepResponse(step))
}

func (h *tripHandler) listSteps(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tripID, err := pathID(c, "tripID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	steps, err := h.stepService.ListStepsByTrip(c.Request.Context(), tripID, userID)
	if err != nil {
		respondTripError(c, logger, err, "list steps")
		return
	}

	c.JSON(http.StatusOK, dto.ListStepsResponse{Steps: dto.ToStepResponses(steps)})
}

func (h *tripHandler) checkStepConflicts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tripID, err := pathID(c, "tripID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var query dto.ConflictCheckQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for conflict check", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	conflicts, err := h.stepService.CheckDateConflicts(c.Request.Context(), tripID, userID,
		query.StartDate, query.EndDate, query.ExcludeStepID)
	if err != nil {
		respondTripError(c, logger, err, "check date conflicts")
		return
	}

	c.JSON(http.StatusOK, dto.ConflictsResponse{Conflicts: dto.ToStepResponses(conflicts)})
}

func (h *tripHandler) createChecklist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tripID, err := pathID(c, "tripID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChecklist", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	checklist, err := h.checklistService.CreateChecklist(c.Request.Context(), tripID, userID, req)
	if err != nil {
		respondTripError(c, logger, err, "create checklist")
		return
	}

	c.JSON(http.StatusCreated, dto.ToChecklistResponse(checklist))
}

func (h *tripHandler) listChecklists(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tripID, err := pathID(c, "tripID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checklists, err := h.checklistService.ListChecklistsByTrip(c.Request.Context(), tripID, userID)
	if err != nil {
		respondTripError(c, logger, err, "list checklists")
		return
	}

	resp := dto.ListChecklistsResponse{Checklists: make([]dto.ChecklistResponse, len(checklists))}
	for i := range checklists {
		resp.Checklists[i] = dto.ToChecklistResponse(&checklists[i])
	}
	c.JSON(http.StatusOK, resp)
}
