// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// ScheduleOff disables the scheduled warning job.
const ScheduleOff = "off"

type Config struct {
	// HTTP Server
	APIURL string
	Port   string

	// Database
	DataDir string

	// Sessions
	JWTSecret  string
	SessionTTL string

	// Budget evaluation
	Timezone        string
	WarningSchedule string
}

// Load reads an optional .env file and returns the configuration from the environment.
// Variables that are already set are not overridden by the file.
func Load(files ...string) *Config {
	// A missing .env file is fine, production deployments use the environment
	_ = godotenv.Load(files...)

	return &Config{
		APIURL:          getEnv("API_URL", ""),
		Port:            getEnv("PORT", "8080"),
		DataDir:         getEnv("DATA_DIR", "data"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		SessionTTL:      getEnv("SESSION_TTL", "720h"),
		Timezone:        getEnv("BUDGET_TIMEZONE", "Local"),
		WarningSchedule: getEnv("WARNING_SCHEDULE", "@hourly"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if _, err := c.URL(); err != nil {
		problems = append(problems, err.Error())
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DataDir == "" {
		problems = append(problems, "DATA_DIR must not be empty")
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET must be set")
	}

	if _, err := c.TTL(); err != nil {
		problems = append(problems, err.Error())
	}

	if _, err := c.Location(); err != nil {
		problems = append(problems, err.Error())
	}

	if c.ScheduleEnabled() {
		if _, err := cron.ParseStandard(c.WarningSchedule); err != nil {
			problems = append(problems, fmt.Sprintf("invalid WARNING_SCHEDULE '%s': %v", c.WarningSchedule, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// URL returns the public URL of the API.
func (c *Config) URL() (*url.URL, error) {
	if c.APIURL == "" {
		return nil, errors.New("API_URL must be set")
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_URL '%s': must be an absolute URL", c.APIURL)
	}

	u.Path = strings.TrimSuffix(u.Path, "/")
	return u, nil
}

// TTL returns the lifetime of sessions.
func (c *Config) TTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid SESSION_TTL '%s': %v", c.SessionTTL, err)
	}

	if d <= 0 {
		return 0, fmt.Errorf("invalid SESSION_TTL '%s': must be positive", c.SessionTTL)
	}

	return d, nil
}

// Location returns the location the budget period windows are computed in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BUDGET_TIMEZONE '%s': %v", c.Timezone, err)
	}

	return loc, nil
}

// ScheduleEnabled reports whether the scheduled warning job runs.
func (c *Config) ScheduleEnabled() bool {
	return c.WarningSchedule != "" && c.WarningSchedule != ScheduleOff
}

// DatabaseFile returns the path of the SQLite database.
func (c *Config) DatabaseFile() string {
	return filepath.Join(c.DataDir, "ledger.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
