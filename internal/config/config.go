package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		CORS
		Database
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	CORS struct {
		// Single origin the frontend is served from. All methods and
		// headers are allowed for it.
		AllowedOrigin string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("database_path", "./bookstore.sqlite")
	v.SetDefault("cors_allowed_origin", "http://localhost:3000")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		CORS: CORS{
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
