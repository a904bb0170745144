package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type DatabaseConfig struct {
	Path string
}

type CORSConfig struct {
	AllowOrigins []string
}

// Load reads configuration from environment variables and an optional
// .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("DATABASE_PATH", "hackathon.db")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:3001")

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("SERVER_ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("DATABASE_PATH"),
		},
		CORS: CORSConfig{
			AllowOrigins: strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ","),
		},
	}

	return cfg, nil
}
