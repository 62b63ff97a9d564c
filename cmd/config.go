package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/domain/model/role"
	"marketplace/internal/core/domain/policy"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string
	Database postgres.Config
	LogLevel string

	JWTSecret string

	// SelfServiceRoles is the parsed POLICY_SELF_SERVICE_ROLES value.
	SelfServiceRoles       []role.Role
	ReconciliationSchedule string
}

// LoadConfig reads an optional env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_DRIVER", postgres.DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "marketplace")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "marketplace")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SQLITE_PATH", "marketplace.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("POLICY_SELF_SERVICE_ROLES", "strict")
	v.SetDefault("RECONCILIATION_SCHEDULE", "@every 5m")

	connMaxLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return Config{}, fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
	}

	selfService, err := policy.ParseSelfServiceRoles(v.GetString("POLICY_SELF_SERVICE_ROLES"))
	if err != nil {
		return Config{}, fmt.Errorf("POLICY_SELF_SERVICE_ROLES: %w", err)
	}

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return Config{
		HTTPPort: v.GetString("HTTP_PORT"),
		Database: postgres.Config{
			Driver:          v.GetString("DB_DRIVER"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			SQLitePath:      v.GetString("DB_SQLITE_PATH"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		LogLevel:               v.GetString("LOG_LEVEL"),
		JWTSecret:              secret,
		SelfServiceRoles:       selfService,
		ReconciliationSchedule: v.GetString("RECONCILIATION_SCHEDULE"),
	}, nil
}
