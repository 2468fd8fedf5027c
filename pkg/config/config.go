package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type CatalogConfig struct {
	File string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Fragrance Recommendation API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: strings.Split(getEnv("CORS_ALLOW_ORIGINS", "*"), ","),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", "data/fragrances.csv"),
		},
	}

	if cfg.Catalog.File == "" {
		return nil, errors.New("missing catalog file path")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
