// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort  string
	DatabaseURL string
}

// LoadConfig loads configuration from environment variables, with .env
// support for local development. The store is addressed by a single
// connection string: DATABASE_URL wins, otherwise one is assembled from the
// discrete DB_* variables. The default sslmode is require (TLS on, no
// certificate verification) since the target deployment sits behind a
// managed Postgres.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load() // Load .env file if present

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		var err error
		databaseURL, err = assembleDatabaseURL()
		if err != nil {
			return nil, err
		}
	}

	return &AppConfig{
		ServerPort:  serverPort,
		DatabaseURL: databaseURL,
	}, nil
}

// assembleDatabaseURL builds a postgres:// connection string from the
// discrete DB_* variables, defaulting to a local development database.
func assembleDatabaseURL() (string, error) {
	host := envOrDefault("DB_HOST", "localhost")
	port := envOrDefault("DB_PORT", "5432")
	user := envOrDefault("DB_USER", "user")
	password := envOrDefault("DB_PASSWORD", "password")
	dbName := envOrDefault("DB_NAME", "expensedb")
	sslMode := envOrDefault("DB_SSLMODE", "require")

	if host == "" || dbName == "" {
		return "", fmt.Errorf("DB_HOST and DB_NAME must not be empty")
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(user), url.QueryEscape(password), host, port, dbName, sslMode), nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
