package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// StartSingle (re)starts the single-player game.
// GET /start?difficulty=easy|medium|hard
func (h *Handler) StartSingle(c *gin.Context) {
	h.Single.Start(c.Query("difficulty"))
	c.String(http.StatusOK, "Game started")
}

// GuessSingle evaluates one single-player guess.
// GET /guess?number=N
func (h *Handler) GuessSingle(c *gin.Context) {
	n, err := strconv.Atoi(c.Query("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number must be an integer"})
		return
	}

	c.String(http.StatusOK, h.Single.Guess(n))
}
