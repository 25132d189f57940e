package handlers

import (
	"log/slog"
	"net/http"

	"headset-lending-backend/internal/fanout"
	"headset-lending-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// wsHandler upgrades observer connections and hands them to the fan-out hub.
type wsHandler struct {
	hub      *fanout.Hub
	upgrader websocket.Upgrader
}

// newWSHandler creates a new wsHandler. Origin checking is delegated to the
// CORS layer; the upgrader accepts what the router let through.
func newWSHandler(hub *fanout.Hub) *wsHandler {
	return &wsHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// serveObserver godoc
// @Summary Subscribe to availability events
// @Description Upgrades to a websocket pushing unit_booked / unit_returned events. Auth via "token" query parameter.
// @Tags events
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /ws [get]
func (h *wsHandler) serveObserver(c *gin.Context) {
	logger := loggerFrom(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	fanout.NewClient(h.hub, conn, userID).Start()
}
