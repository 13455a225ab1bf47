package database

import (
	"fmt"
	"net/url"

	"wealthyways/internal/config"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(app *config.Config) (*Config, error) {
	cfg := &Config{
		Driver:   app.DBDriver,
		Path:     app.DBPath,
		Host:     app.DBHost,
		Port:     app.DBPort,
		User:     app.DBUser,
		Password: app.DBPassword,
		DBName:   app.DBName,
		SSLMode:  app.DBSSLMode,
	}

	switch cfg.Driver {
	case DriverSQLite, DriverPostgres:
		return cfg, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use sqlite or postgres)", cfg.Driver)
	}
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the golang-migrate database URL for the configured driver.
func (c *Config) MigrateURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + c.Path
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName, c.SSLMode)
}
