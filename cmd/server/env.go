package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	AladhanBaseURL string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:    os.Getenv("APP_ENV"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AladhanBaseURL: os.Getenv("ALADHAN_BASE_URL"),
	}

	if env.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}

	return env
}
