package handlers

import (
	"guessduel/internal/game"
	"guessduel/internal/leaderboard"
)

// Handler carries the single-player game and the leaderboard store.
// The multiplayer hub has its own upgrade handler in ws.go.
type Handler struct {
	Single *game.Single
	Scores leaderboard.Store
}

func NewHandler(single *game.Single, scores leaderboard.Store) *Handler {
	return &Handler{Single: single, Scores: scores}
}
