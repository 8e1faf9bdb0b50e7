package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the environment-driven settings of the CLI.
type Config struct {
	DataDir  string // DATA_DIR: where the session log lives
	LogLevel string // LOG_LEVEL: zerolog level name
}

// loadConfig reads configuration from a .env file if present, then the
// environment.
func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	return Config{
		DataDir:  getEnvWithDefault("DATA_DIR", ".data"),
		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

// setupLogging configures the global zerolog level and console output.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func getEnvWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
