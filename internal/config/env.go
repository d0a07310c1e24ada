package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names match the ones the hosted API documents.
const (
	EnvApplicationKey = "IMAGEZEBRA_APPLICATION_KEY"
	EnvUsername       = "IMAGEZEBRA_USERNAME"
	EnvPassword       = "IMAGEZEBRA_PASSWORD"
	EnvBaseURL        = "IMAGEZEBRA_BASE_URL"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first, if present; already-exported
// variables win over the file. Unset variables leave the Config untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvApplicationKey); v != "" {
		cfg.ApplicationKey = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		cfg.Password = v
	}
}
