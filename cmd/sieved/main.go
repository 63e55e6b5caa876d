// Web service front end for the sieve solver.
package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/oakmund/sieve/storage"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("load .env")
	}

	ctx := context.Background()
	stored := true
	cacheId, databaseId, err := storage.Connect(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("storage unavailable, running solve-only")
		stored = false
	} else {
		log.Info().Str("cache", cacheId).Str("database", databaseId).Msg("storage connected")
		defer storage.Close(ctx)
	}

	e := gin.Default()
	registerRoutes(e, stored)

	addr := ":" + envOrDefault("PORT", "8080")
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
