package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/dto"
	"github.com/tripflow/tripflow_backend/internal/middleware"
)

// checklistHandler handles HTTP requests addressed to a checklist or one of
// its items. Creation and listing of checklists live under the owning trip.
type checklistHandler struct {
	checklistService portssvc.ChecklistSvcFacade
}

func newChecklistHandler(cs portssvc.ChecklistSvcFacade) *checklistHandler {
	return &checklistHandler{checklistService: cs}
}

func registerChecklistRoutes(rg *gin.RouterGroup, cs portssvc.ChecklistSvcFacade) {
	h := newChecklistHandler(cs)

	checklists := rg.Group("/checklists")
	{
		checklists.GET("/:checklistID", h.getChecklist)
		checklists.DELETE("/:checklistID", h.deleteChecklist)
		checklists.POST("/:checklistID/items", h.createItem)
		checklists.GET("/:checklistID/items", h.listItems)
	}

	items := rg.Group("/checklist-items")
	{
		items.PUT("/:itemID", h.updateItem)
		items.DELETE("/:itemID", h.deleteItem)
	}
}

func (h *checklistHandler) getChecklist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	checklistID, err := pathID(c, "checklistID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checklist, err := h.checklistService.GetChecklistByID(c.Request.Context(), checklistID, userID)
	if err != nil {
		respondTripError(c, logger, err, "get checklist")
		return
	}

	c.JSON(http.StatusOK, dto.ToChecklistResponse(checklist))
}

func (h *checklistHandler) deleteChecklist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	checklistID, err := pathID(c, "checklistID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.checklistService.DeleteChecklist(c.Request.Context(), checklistID, userID); err != nil {
		respondTripError(c, logger, err, "delete checklist")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *checklistHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	checklistID, err := pathID(c, "checklistID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChecklistItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.checklistService.CreateChecklistItem(c.Request.Context(), checklistID, userID, req)
	if err != nil {
		respondTripError(c, logger, err, "create checklist item")
		return
	}

	c.JSON(http.StatusCreated, dto.ToChecklistItemResponse(item))
}

func (h *checklistHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	checklistID, err := pathID(c, "checklistID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.checklistService.ListChecklistItems(c.Request.Context(), checklistID, userID)
	if err != nil {
		respondTripError(c, logger, err, "list checklist items")
		return
	}

	resp := dto.ListChecklistItemsResponse{Items: make([]dto.ChecklistItemResponse, len(items))}
	for i := range items {
		resp.Items[i] = dto.ToChecklistItemResponse(&items[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *checklistHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	itemID, err := pathID(c, "itemID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateChecklistItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.checklistService.UpdateChecklistItem(c.Request.Context(), itemID, userID, req)
	if err != nil {
		respondTripError(c, logger, err, "update checklist item")
		return
	}

	c.JSON(http.StatusOK, dto.ToChecklistItemResponse(item))
}

func (h *checklistHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	itemID, err := pathID(c, "itemID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.checklistService.DeleteChecklistItem(c.Request.Context(), itemID, userID); err != nil {
		respondTripError(c, logger, err, "delete checklist item")
		return
	}

	c.Status(http.StatusNoContent)
}
