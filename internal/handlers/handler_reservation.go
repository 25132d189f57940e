package handlers

import (
	"log/slog"
	"net/http"

	portssvc "headset-lending-backend/internal/core/ports/services"
	"headset-lending-backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// reservationHandler handles HTTP requests for borrow/return and the
// reservation history views.
type reservationHandler struct {
	allocatorService  portssvc.AllocatorSvcFacade
	projectionService portssvc.ProjectionSvcFacade
}

// newReservationHandler creates a new reservationHandler.
func newReservationHandler(allocatorService portssvc.AllocatorSvcFacade, projectionService portssvc.ProjectionSvcFacade) *reservationHandler {
	return &reservationHandler{
		allocatorService:  allocatorService,
		projectionService: projectionService,
	}
}

// borrowHeadset godoc
// @Summary Borrow a headset
// @Description Atomically reserves a headset for the caller. Omit headsetID to get any available unit.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.BorrowRequest false "Optional specific headset"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request format"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "POLICY_WINDOW_EXCEEDED"
// @Failure 404 {object} handlers.ErrorResponse "UNIT_NOT_FOUND"
// @Failure 409 {object} handlers.ErrorResponse "NO_UNITS_AVAILABLE or BORROWER_ALREADY_HOLDS"
// @Failure 503 {object} handlers.ErrorResponse "STORAGE_UNAVAILABLE"
// @Security BearerAuth
// @Router /requests/borrow [post]
func (h *reservationHandler) borrowHeadset(c *gin.Context) {
	logger := loggerFrom(c)

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	req := dto.BorrowRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind JSON for borrowHeadset", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
			return
		}
	}

	reservation, err := h.allocatorService.Borrow(c.Request.Context(), userID, req.HeadsetID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Headset booked successfully",
		slog.String("reservation_id", reservation.ReservationID),
		slog.String("headset_id", reservation.HeadsetID))
	c.JSON(http.StatusOK, dto.ToReservationResponse(*reservation))
}

// returnHeadset godoc
// @Summary Return a borrowed headset
// @Description Atomically closes the caller's active reservation for the headset.
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.ReturnRequest true "Headset to return"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request format"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "NO_ACTIVE_RESERVATION"
// @Failure 503 {object} handlers.ErrorResponse "STORAGE_UNAVAILABLE"
// @Security BearerAuth
// @Router /requests/return [post]
func (h *reservationHandler) returnHeadset(c *gin.Context) {
	logger := loggerFrom(c)

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	req := dto.ReturnRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for returnHeadset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	reservation, err := h.allocatorService.Return(c.Request.Context(), userID, req.HeadsetID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Headset returned successfully",
		slog.String("reservation_id", reservation.ReservationID),
		slog.String("headset_id", reservation.HeadsetID))
	c.JSON(http.StatusOK, dto.ToReservationResponse(*reservation))
}

// listRecentReservations godoc
// @Summary List recent reservations
// @Description Bounded most-recent-first reservation history with token paging
// @Tags requests
// @Produce json
// @Param limit query int false "Page size (default 5, max 100)"
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination token"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /requests [get]
func (h *reservationHandler) listRecentReservations(c *gin.Context) {
	params := dto.ListReservationsParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	page, err := h.projectionService.ListRecentReservations(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// getActiveReservation godoc
// @Summary Get the caller's active reservation
// @Description Returns the borrowed reservation currently held by the caller, if any
// @Tags requests
// @Produce json
// @Success 200 {object} dto.ReservationResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "No active reservation"
// @Failure 500 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /requests/active [get]
func (h *reservationHandler) getActiveReservation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	reservation, err := h.projectionService.ActiveReservation(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(*reservation))
}
