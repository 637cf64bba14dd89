package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv loads config/envs/.env.<env> and then a local .env into the process
// environment. Variables already set in the environment are never overridden.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No env file found, using OS environment",
			slog.String("file", envFile))
	}

	if err := gotenv.Load(); err != nil {
		slog.Debug("No .env file found in working directory")
	}
}
