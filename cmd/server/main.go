package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/aladhan"
	"github.com/barakah-labs/minaret/internal/db"
	"github.com/barakah-labs/minaret/internal/hijrisync"
	"github.com/barakah-labs/minaret/internal/redis"
	"github.com/barakah-labs/minaret/internal/strategy"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	defer db.Close()

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
		defer redis.Close()
	}

	client := aladhan.NewClient()
	if env.AladhanBaseURL != "" {
		client.BaseURL = env.AladhanBaseURL
	}

	store := db.NewStore(db.DB)
	resolver := strategy.NewResolver(client)
	synchronizer := hijrisync.NewSynchronizer(client, store)

	r := gin.Default()
	RegisterRoutes(r, client, resolver, store, synchronizer)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
