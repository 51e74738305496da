package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
	"github.com/tripflow/tripflow_backend/internal/middleware"
)

// stepHandler handles HTTP requests addressed to a single step, including
// its journal entry.
type stepHandler struct {
	stepService    portssvc.StepSvcFacade
	journalService portssvc.JournalSvcFacade
}

func newStepHandler(ss portssvc.StepSvcFacade, js portssvc.JournalSvcFacade) *stepHandler {
	return &stepHandler{stepService: ss, journalService: js}
}

// registerStepRoutes registers the step-addressed routes. Creation and
// listing live under the owning trip.
func registerStepRoutes(rg *gin.RouterGroup, ss portssvc.StepSvcFacade, js portssvc.JournalSvcFacade) {
	h := newStepHandler(ss, js)

	steps := rg.Group("/steps")
	{
		steps.GET("/:stepID", h.getStep)
		steps.PUT("/:stepID", h.updateStep)
		steps.DELETE("/:stepID", h.deleteStep)

		steps.GET("/:stepID/journal", h.getJournalEntry)
		steps.PUT("/:stepID/journal", h.saveJournalEntry)
	}
}

func (h *stepHandler) getStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	stepID, err := pathID(c, "stepID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	step, err := h.stepService.GetStepByID(c.Request.Context(), stepID, userID)
	if err != nil {
		respondTripError(c, logger, err, "get step")
		return
	}

	c.JSON(http.StatusOK, dto.ToStepResponse(step))
}

func (h *stepHandler) updateStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	stepID, err := pathID(c, "stepID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStep", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	step, err := h.stepService.UpdateStep(c.Request.Context(), stepID, userID, req)
	if err != nil {
		respondTripError(c, logger, err, "update step")
		return
	}

	c.JSON(http.StatusOK, dto.ToStepResponse(step))
}

func (h *stepHandler) deleteStep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	stepID, err := pathID(c, "stepID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.stepService.DeleteStep(c.Request.Context(), stepID, userID); err != nil {
		respondTripError(c, logger, err, "delete step")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *stepHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	stepID, err := pathID(c, "stepID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalService.GetJournalEntryForStep(c.Request.Context(), stepID, userID)
	if err != nil {
		respondTripError(c, logger, err, "get journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *stepHandler) saveJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	stepID, err := pathID(c, "stepID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.SaveJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.SaveJournalEntryForStep(c.Request.Context(), stepID, userID, req)
	if err != nil {
		respondTripError(c, logger, err, "save journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
