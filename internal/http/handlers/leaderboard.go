package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SaveScore records the current single-player attempt count under the
// given name and returns the resulting top list.
// GET /save-score?name=X
func (h *Handler) SaveScore(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		name = "Anonymous"
	}

	top, err := h.Scores.Record(c.Request.Context(), name, h.Single.Attempts())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save score"})
		return
	}

	c.JSON(http.StatusOK, top)
}

// GetLeaderboard returns the current top list.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	top, err := h.Scores.Top(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get leaderboard"})
		return
	}

	c.JSON(http.StatusOK, top)
}
