// Package config loads the console configuration from the environment.
//
// Configuration Sources:
//  1. Default values (hardcoded)
//  2. .env file (local development via godotenv)
//  3. Environment variables
//
// Usage:
//
//	cfg := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the console
type Config struct {
	Service   ServiceConfig
	API       APIConfig     // Backend REST API the console is a client of
	Session   SessionConfig // Browser session cookie
	Tracing   TracingConfig
	Profiling ProfilingConfig
	Logging   LoggingConfig
	Metrics   MetricsConfig
	Database  DatabaseConfig // Optional; sessions stay in memory when DB_HOST is empty
	// Graceful shutdown timeout in seconds - from SHUTDOWN_TIMEOUT env (default: 10)
	ShutdownTimeout int
	// Delay after failing readiness before the HTTP server stops.
	// From READINESS_DRAIN_DELAY env (default: 5s, max: 30s).
	ReadinessDrainDelay int
}

type ServiceConfig struct {
	Name    string // from SERVICE_NAME env (default: "petopia-console")
	Port    string // from PORT env (default: "8080")
	Version string // from VERSION env
	Env     string // development/staging/production - from ENV env
}

// APIConfig points the console at the backend API.
type APIConfig struct {
	BaseURL string        // from API_BASE_URL env
	Timeout time.Duration // per-call timeout - from API_TIMEOUT env (default: 10s)
}

// SessionConfig configures the session cookie.
type SessionConfig struct {
	CookieName    string        // from SESSION_COOKIE env (default: "petopia_session")
	Secure        bool          // from SESSION_COOKIE_SECURE env (default: false in development)
	MaxAge        time.Duration // upper bound when the token carries no expiry - from SESSION_MAX_AGE env (default: 24h)
	SweepInterval time.Duration // how often expired sessions are purged - from SESSION_SWEEP_INTERVAL env (default: 10m)
}

type TracingConfig struct {
	Enabled            bool    // from TRACING_ENABLED env (default: false)
	Endpoint           string  // OTel Collector endpoint - from OTEL_COLLECTOR_ENDPOINT env
	SampleRate         float64 // 0.0-1.0 - from OTEL_SAMPLE_RATE env
	ServiceName        string
	MaxExportBatchSize int // from OTEL_BATCH_SIZE env (default: 512)
}

type ProfilingConfig struct {
	Enabled     bool   // from PROFILING_ENABLED env (default: false)
	Endpoint    string // from PYROSCOPE_ENDPOINT env
	ServiceName string
}

type LoggingConfig struct {
	Level  string // debug, info, warn, error - from LOG_LEVEL env
	Format string // json, console - from LOG_FORMAT env
}

type MetricsConfig struct {
	Enabled bool   // from METRICS_ENABLED env (default: true)
	Path    string // from METRICS_PATH env (default: "/metrics")
}

// DatabaseConfig defines the PostgreSQL session store.
type DatabaseConfig struct {
	Host           string // from DB_HOST env
	Port           string // from DB_PORT env (default: "5432")
	Name           string // from DB_NAME env
	User           string // from DB_USER env
	Password       string // from DB_PASSWORD env
	SSLMode        string // from DB_SSLMODE env (default: "disable")
	MaxConnections int    // from DB_POOL_MAX_CONNECTIONS env (default: 10)
}

// Enabled reports whether a database was configured.
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// BuildDSN constructs PostgreSQL connection string from config
func (c *DatabaseConfig) BuildDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Load reads configuration from environment variables with defaults.
// Environment variables override values from a .env file.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("ENV", "development")
	name := getEnv("SERVICE_NAME", "petopia-console")
	return &Config{
		Service: ServiceConfig{
			Name:    name,
			Port:    getEnv("PORT", "8080"),
			Version: getEnv("VERSION", "dev"),
			Env:     env,
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:4000"), "/"),
			Timeout: getEnvDuration("API_TIMEOUT", 10*time.Second),
		},
		Session: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE", "petopia_session"),
			Secure:        getEnvBool("SESSION_COOKIE_SECURE", !isDevelopment(env)),
			MaxAge:        getEnvDuration("SESSION_MAX_AGE", 24*time.Hour),
			SweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		},
		Tracing: TracingConfig{
			Enabled:            getEnvBool("TRACING_ENABLED", false),
			Endpoint:           getEnv("OTEL_COLLECTOR_ENDPOINT", "localhost:4318"),
			SampleRate:         getEnvFloat("OTEL_SAMPLE_RATE", 0.1),
			ServiceName:        name,
			MaxExportBatchSize: getEnvInt("OTEL_BATCH_SIZE", 512),
		},
		Profiling: ProfilingConfig{
			Enabled:     getEnvBool("PROFILING_ENABLED", false),
			Endpoint:    getEnv("PYROSCOPE_ENDPOINT", "http://localhost:4040"),
			ServiceName: name,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", ""),
			Port:           getEnv("DB_PORT", "5432"),
			Name:           getEnv("DB_NAME", ""),
			User:           getEnv("DB_USER", ""),
			Password:       getEnv("DB_PASSWORD", ""),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConnections: getEnvInt("DB_POOL_MAX_CONNECTIONS", 10),
		},
		ShutdownTimeout:     getEnvDurationSecondsWithMax("SHUTDOWN_TIMEOUT", 10, 60),
		ReadinessDrainDelay: getEnvDurationSecondsWithMax("READINESS_DRAIN_DELAY", 5, 30),
	}
}

// Validate collects every configuration problem into one error.
func (c *Config) Validate() error {
	var errors []string

	if c.Service.Name == "" {
		errors = append(errors, "SERVICE_NAME must not be empty")
	}
	if _, err := strconv.Atoi(c.Service.Port); err != nil {
		errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Service.Port))
	}
	validEnvs := []string{"development", "dev", "staging", "stage", "production", "prod"}
	if !contains(validEnvs, c.Service.Env) {
		errors = append(errors, fmt.Sprintf("ENV must be one of %v, got: %s", validEnvs, c.Service.Env))
	}

	// API validation
	if !govalidator.IsRequestURL(c.API.BaseURL) {
		errors = append(errors, fmt.Sprintf("API_BASE_URL must be an absolute http(s) URL, got: %q", c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errors = append(errors, "API_TIMEOUT must be a positive duration (e.g., '10s')")
	}

	// Session validation
	if c.Session.CookieName == "" || !govalidator.IsPrintableASCII(c.Session.CookieName) || strings.ContainsAny(c.Session.CookieName, " ;=,") {
		errors = append(errors, fmt.Sprintf("SESSION_COOKIE must be a valid cookie name, got: %q", c.Session.CookieName))
	}
	if c.Session.MaxAge <= 0 {
		errors = append(errors, "SESSION_MAX_AGE must be a positive duration (e.g., '24h')")
	}
	if c.Session.SweepInterval <= 0 {
		errors = append(errors, "SESSION_SWEEP_INTERVAL must be a positive duration (e.g., '10m')")
	}

	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			errors = append(errors, "OTEL_COLLECTOR_ENDPOINT is required when tracing is enabled")
		}
		if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1.0 {
			errors = append(errors, fmt.Sprintf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got: %.2f", c.Tracing.SampleRate))
		}
	}
	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		errors = append(errors, "PYROSCOPE_ENDPOINT is required when profiling is enabled")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.Logging.Level) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of %v, got: %s", validLogLevels, c.Logging.Level))
	}
	validLogFormats := []string{"json", "console"}
	if !contains(validLogFormats, c.Logging.Format) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of %v, got: %s", validLogFormats, c.Logging.Format))
	}

	if c.Database.Enabled() {
		if c.Database.Name == "" {
			errors = append(errors, "DB_NAME is required when DB_HOST is set")
		}
		if c.Database.User == "" {
			errors = append(errors, "DB_USER is required when DB_HOST is set")
		}
		if _, err := strconv.Atoi(c.Database.Port); err != nil {
			errors = append(errors, fmt.Sprintf("DB_PORT must be a valid number, got: %s", c.Database.Port))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return isDevelopment(c.Service.Env)
}

func isDevelopment(env string) bool {
	env = strings.ToLower(env)
	return env == "development" || env == "dev"
}

func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	return time.Duration(c.ReadinessDrainDelay) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool accepts "true", "1", "yes" for true
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	intValue, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	floatValue, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

// getEnvDuration keeps invalid values visible to Validate by returning zero.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

// getEnvDurationSecondsWithMax reads a Go duration (e.g. "5s") and returns whole seconds.
// Invalid or out of range values fall back to the default.
func getEnvDurationSecondsWithMax(key string, defaultValueSeconds int, maxSeconds int) int {
	timeout, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValueSeconds
	}
	seconds := int(timeout.Seconds())
	if seconds <= 0 || seconds > maxSeconds {
		return defaultValueSeconds
	}
	return seconds
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
