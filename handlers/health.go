package handlers

import (
	"net/http"

	"bookflow/utils"

	"github.com/gin-gonic/gin"
)

// Health reports the latest dependency snapshot from the background
// monitor.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
}
