package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port       string `envconfig:"PORT" default:"8080"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"vendastock"`

	JWTSecret string `envconfig:"JWT_SECRET"`
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, relying on environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		logrus.WithError(err).Fatal("failed to parse environment configuration")
	}
	return cfg
}
