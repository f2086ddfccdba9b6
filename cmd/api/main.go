package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/HealthHubServices/healthhub-api/internal/config"
	dbpkg "github.com/HealthHubServices/healthhub-api/internal/db"
	"github.com/HealthHubServices/healthhub-api/internal/middleware"
	"github.com/HealthHubServices/healthhub-api/internal/routes"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
)

func main() {

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	// The snapshot mirror is best effort. A missing Redis only costs
	// the read-only state endpoint, so boot continues without it.
	var rdb *redis.Client
	if opts, err := redis.ParseURL(cfg.RedisURL); err != nil {
		log.Warn().Err(err).Msg("invalid REDIS_URL, state snapshots disabled")
	} else {
		rdb = redis.NewClient(opts)
	}
	mirror := snapshot.New(rdb, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.ActorMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, mirror, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
