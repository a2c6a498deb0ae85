package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"appeals-api/config"
)

// GetLogs serves the backend log file for debugging. Access is gated by
// the LOG_ACCESS_TOKEN env var; with no token configured the route is
// effectively disabled.
func GetLogs(c *gin.Context) {
	accessToken := os.Getenv("LOG_ACCESS_TOKEN")
	if accessToken == "" || c.Query("token") != accessToken {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logData, err := os.ReadFile(config.LogFilePath())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to read log"})
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", logData)
}
