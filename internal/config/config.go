package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port         string        `json:"port"`
	AllowOrigins []string      `json:"allow_origins"`
	CacheTTL     time.Duration `json:"cache_ttl"`
}

// SchedulerConfig holds the background job settings.
type SchedulerConfig struct {
	// Nightly cache warm for the recommendation catalog.
	CacheWarm struct {
		Enabled  bool          `json:"enabled"`
		Interval time.Duration `json:"interval"`
	} `json:"cache_warm"`
}

// MailConfig holds SMTP settings for appointment confirmations.
type MailConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

// GetServerConfig reads server settings from the environment.
func GetServerConfig() *ServerConfig {
	config := &ServerConfig{}

	config.Port = getEnvString("PORT", "8080")
	config.AllowOrigins = []string{getEnvString("FRONTEND_ORIGIN", "http://localhost:5173")}
	config.CacheTTL = getEnvDuration("CACHE_TTL", 1*time.Hour)

	return config
}

// GetSchedulerConfig reads background job settings from the environment.
func GetSchedulerConfig() *SchedulerConfig {
	config := &SchedulerConfig{}

	config.CacheWarm.Enabled = getEnvBool("CACHE_WARM_ENABLED", true)
	config.CacheWarm.Interval = getEnvDuration("CACHE_WARM_INTERVAL", 24*time.Hour)

	return config
}

// GetMailConfig reads SMTP settings from the environment. An empty Host
// disables outgoing mail.
func GetMailConfig() *MailConfig {
	config := &MailConfig{}

	config.Host = getEnvString("SMTP_HOST", "")
	config.Port = getEnvInt("SMTP_PORT", 587)
	config.Username = getEnvString("SMTP_USERNAME", "")
	config.Password = getEnvString("SMTP_PASSWORD", "")
	config.From = getEnvString("SMTP_FROM", config.Username)

	return config
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
