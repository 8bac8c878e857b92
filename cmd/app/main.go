package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"guessduel/internal/config"
	"guessduel/internal/db"
	httpserver "guessduel/internal/http"
	"guessduel/internal/http/middleware"
	"guessduel/internal/leaderboard"
	"guessduel/internal/logger"
	"guessduel/internal/ws"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	// Leaderboard persistence: Postgres when configured, the flat
	// score file otherwise.
	var scores leaderboard.Store
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			cancel()
			logger.Fatal("database connection failed", "error", err)
		}
		defer pool.Close()

		pg := leaderboard.NewPostgresStore(pool, cfg.LeaderboardSize)
		if err := pg.EnsureSchema(ctx); err != nil {
			cancel()
			logger.Fatal("schema setup failed", "error", err)
		}
		cancel()
		scores = pg
	} else {
		scores = leaderboard.NewFileStore(cfg.ScoresFile, cfg.LeaderboardSize)
	}

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	r := gin.Default()

	// CORS: the frontend may live on another origin.
	r.Use(func(c *gin.Context) {
		if origin := c.Request.Header.Get("Origin"); origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	hub := ws.NewHub()
	httpserver.RegisterRoutes(r, cfg, hub, scores, version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", "error", err)
	}

	logger.Info("server exited")
}
