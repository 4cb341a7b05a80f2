// Package envconfig reads server configuration from the environment,
// optionally loading a .env file first.
package envconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/database"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// LoadEnvFile loads the given .env file if it exists. A missing file is
// not an error, environment variables simply take effect on their own.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// GetEnv returns the environment variable value or a fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetEnvInt returns the environment variable parsed as an int or a fallback.
func GetEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetLogLevel maps LOG_LEVEL to a logger level, defaulting to info.
func GetLogLevel() logger.LogLevel {
	switch GetEnv("LOG_LEVEL", "info") {
	case "debug":
		return logger.LevelDebug
	case "warn":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// LoadDatabaseConfig builds a database config from DB_* variables.
func LoadDatabaseConfig() database.Config {
	config := database.DefaultConfig()
	config.Host = GetEnv("DB_HOST", config.Host)
	config.Port = GetEnvInt("DB_PORT", config.Port)
	config.User = GetEnv("DB_USER", config.User)
	config.Password = GetEnv("DB_PASSWORD", config.Password)
	config.DBName = GetEnv("DB_NAME", config.DBName)
	config.SSLMode = GetEnv("DB_SSL_MODE", config.SSLMode)
	return config
}
