package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"guessduel/internal/config"
	"guessduel/internal/game"
	"guessduel/internal/http/handlers"
	"guessduel/internal/http/middleware"
	"guessduel/internal/leaderboard"
	"guessduel/internal/ws"
)

// RegisterRoutes wires the single-player API, the leaderboard and the
// multiplayer websocket endpoint.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, hub *ws.Hub, scores leaderboard.Store, version string) {
	h := handlers.NewHandler(game.NewSingle(), scores)
	health := handlers.NewHealthHandler(version)

	// Health checks, no rate limiting.
	r.GET("/healthz", health.Liveness)
	r.GET("/health", health.Health)

	// Single-player API and leaderboard, rate limited per IP when
	// Redis is configured.
	rl := middleware.RedisRateLimit(cfg.APIRateLimit, time.Duration(cfg.APIRateWindow)*time.Second)
	api := r.Group("/", rl)
	api.GET("/start", h.StartSingle)
	api.GET("/guess", h.GuessSingle)
	api.GET("/save-score", h.SaveScore)
	api.GET("/leaderboard", h.GetLeaderboard)

	// Multiplayer duels.
	r.GET("/ws", handlers.WS(hub, cfg.AllowedOrigin))
}
