// Package config provides environment-driven configuration for the tracker
// service. Values come from environment variables (optionally seeded from a
// .env file by main), defaults fill the gaps, and Validate runs at startup
// so a misconfigured service refuses to boot instead of failing mid-lookup.
package config

import (
	"strconv"
	"time"
)

// Config holds all service configuration.
type Config struct {
	Server   ServerConfig
	Sheets   SheetsConfig
	Tracking TrackingConfig
	Rate     RateLimitConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`

	// RequestTimeout is the middleware timeout per request (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// SheetsConfig holds the published CSV data source settings.
type SheetsConfig struct {
	// OrdersURL is the CSV export of the orders sheet.
	// Supports SHEETS_ORDERS_URL with ORDERS_CSV_URL as a fallback.
	OrdersURL string `env:"SHEETS_ORDERS_URL" envAlt:"ORDERS_CSV_URL" default:"https://docs.google.com/spreadsheets/d/e/2PACX-1vQModmlHL0Nh-vN18dxXMtRhuOd2P2owMk-G4qhfhYyJQpQz60VgRBD3-XzW54IvMsB8kjI6H9yJNnJ/pub?gid=526359759&single=true&output=csv"`

	// BatchesURL is the CSV export of the shipment batches sheet.
	BatchesURL string `env:"SHEETS_BATCHES_URL" envAlt:"BATCHES_CSV_URL" default:"https://docs.google.com/spreadsheets/d/e/2PACX-1vQModmlHL0Nh-vN18dxXMtRhuOd2P2owMk-G4qhfhYyJQpQz60VgRBD3-XzW54IvMsB8kjI6H9yJNnJ/pub?gid=0&single=true&output=csv"`

	// FetchTimeout bounds a single CSV fetch (default: 15s)
	FetchTimeout time.Duration `env:"SHEETS_FETCH_TIMEOUT" default:"15s"`
}

// TrackingConfig holds lookup behavior settings.
type TrackingConfig struct {
	// StatusScale overrides the built-in ordered status scale,
	// comma-separated, least progress first. Empty means the default scale.
	StatusScale []string `env:"TRACKING_STATUS_SCALE"`
}

// RateLimitConfig holds per-IP request throttling settings.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the per-IP request budget (default: 60)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"60"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is "text" or "json" (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
