package handlers

import (
	"net/http"

	portssvc "headset-lending-backend/internal/core/ports/services"
	"headset-lending-backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// headsetHandler handles HTTP requests related to the headset pool.
type headsetHandler struct {
	projectionService portssvc.ProjectionSvcFacade
}

// newHeadsetHandler creates a new headsetHandler.
func newHeadsetHandler(projectionService portssvc.ProjectionSvcFacade) *headsetHandler {
	return &headsetHandler{
		projectionService: projectionService,
	}
}

// listHeadsets godoc
// @Summary List all headsets
// @Description Retrieves the full pool with availability flags
// @Tags headsets
// @Produce json
// @Success 200 {object} dto.ListHeadsetsResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /headsets [get]
func (h *headsetHandler) listHeadsets(c *gin.Context) {
	headsets, err := h.projectionService.ListHeadsets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListHeadsetsResponse(headsets))
}

// getHeadset godoc
// @Summary Get a single headset
// @Description Retrieves one headset by its identifier
// @Tags headsets
// @Produce json
// @Param headsetID path string true "Headset identifier"
// @Success 200 {object} dto.HeadsetResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /headsets/{headsetID} [get]
func (h *headsetHandler) getHeadset(c *gin.Context) {
	headset, err := h.projectionService.GetHeadset(c.Request.Context(), c.Param("headsetID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToHeadsetResponse(*headset))
}

// getCounts godoc
// @Summary Get headset availability counts
// @Description Returns total, available and unavailable counts from one committed snapshot
// @Tags headsets
// @Produce json
// @Success 200 {object} dto.CountsResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /headsets/counts [get]
func (h *headsetHandler) getCounts(c *gin.Context) {
	counts, err := h.projectionService.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountsResponse{
		Total:       counts.Total,
		Available:   counts.Available,
		Unavailable: counts.Unavailable,
	})
}
