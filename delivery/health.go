package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewHealthHandler reports which storage backend is serving and whether it is
// reachable.
func NewHealthHandler(r *gin.Engine, database string, available func() bool) {
	r.GET("/api/health", func(c *gin.Context) {
		status := "connected"
		db := database
		if !available() {
			status = "disconnected"
			db = "unavailable"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"database": db,
		})
	})
}
