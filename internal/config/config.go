// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"banktransfer/pkg/db"
)

// AppConfig holds all application-wide configuration.
type AppConfig struct {
	ServerPort string
	DB         db.Config
	JWT        JWTConfig
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	SigningKey []byte
	Issuer     string
	Expiry     time.Duration
}

// LoadConfig loads configuration from environment variables. Database and
// server settings default to local-development values; the JWT signing key
// is required.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		dbPortStr = "5432"
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "user"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		dbPassword = "password"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "banktransferdb"
	}
	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable"
	}

	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		return nil, fmt.Errorf("JWT_SIGNING_KEY is required")
	}
	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "banktransfer"
	}
	expMinutesStr := os.Getenv("JWT_EXP_MINUTES")
	if expMinutesStr == "" {
		expMinutesStr = "60"
	}
	expMinutes, err := strconv.Atoi(expMinutesStr)
	if err != nil || expMinutes <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXP_MINUTES: %q", expMinutesStr)
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		JWT: JWTConfig{
			SigningKey: []byte(signingKey),
			Issuer:     issuer,
			Expiry:     time.Duration(expMinutes) * time.Minute,
		},
	}, nil
}
