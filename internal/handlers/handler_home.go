package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth reports process liveness.
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
