package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverFile   = "file"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// Config holds all configuration for our application
type Config struct {
	Port             string
	Origin           string
	Environment      string
	JWTSecret        string
	TokenExpiryHours int
	Storage          StorageConfig
	TranslationsDir  string
	DefaultLanguage  string
}

// StorageConfig selects and configures the blob store backend.
type StorageConfig struct {
	Driver   string
	DataDir  string
	Database DatabaseConfig
}

// DatabaseConfig holds database connection details for the mysql driver.
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "gamisms"),
	}
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	storage := StorageConfig{
		Driver:   getEnv("STORAGE_DRIVER", DriverFile),
		DataDir:  getEnv("DATA_DIR", "./data"),
		Database: dbConfig,
	}
	switch storage.Driver {
	case DriverFile, DriverMySQL, DriverMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q (want file, mysql or memory)", storage.Driver)
	}

	tokenExpiryHours, err := strconv.Atoi(getEnv("TOKEN_EXPIRY_HOURS", "8760")) // 1 year
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_EXPIRY_HOURS: %w", err)
	}

	return &Config{
		Port:             getEnv("PORT", "3001"),
		Origin:           getEnv("ORIGIN", "http://localhost:4200"),
		Environment:      getEnv("NODE_ENV", "development"),
		JWTSecret:        getEnv("JWT_SECRET", "default_jwt_secret"),
		TokenExpiryHours: tokenExpiryHours,
		Storage:          storage,
		TranslationsDir:  getEnv("TRANSLATIONS_DIR", "./translations"),
		DefaultLanguage:  getEnv("DEFAULT_LANGUAGE", "en"),
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
