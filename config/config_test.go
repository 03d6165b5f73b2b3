package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unset clears a variable for the test while keeping t.Setenv's cleanup.
func unset(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfigDefaults(t *testing.T) {
	unset(t, "PORT")
	unset(t, "DB_HOST")
	unset(t, "DB_NAME")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "vendastock", cfg.DBName)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "token-secret")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "app", cfg.DBUser)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Equal(t, "token-secret", cfg.JWTSecret)
}
