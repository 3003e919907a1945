package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Entry renders the public landing page. GET /
func Entry(c *gin.Context) {
	render(c, http.StatusOK, "entry.html", nil)
}

// Document renders the static info page. GET /document
func Document(c *gin.Context) {
	render(c, http.StatusOK, "document.html", nil)
}

// Index renders the static info page. GET /index
func Index(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

// Health reports liveness. GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
