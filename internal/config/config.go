package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	ServiceName string
	Environment string
	Port        string
	LogLevel    string
	Orders      OrdersConfig
	Database    DatabaseConfig
}

// OrdersConfig holds order processing configuration
type OrdersConfig struct {
	// TableName is the key-value table orders are persisted to. When empty,
	// persistence is skipped and requests still succeed.
	TableName string

	// IdempotencyTableName is declared by the deployment environment but is
	// not read by business logic
	IdempotencyTableName string

	// Region is the AWS region used for the DynamoDB client
	Region string
}

// DatabaseConfig holds local database configuration for server mode
type DatabaseConfig struct {
	RepositoryType   string // "dynamodb", "sqlite" or "none"
	ConnectionString string
	MigrationsPath   string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("SERVICE_NAME", "orders-service")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("REPOSITORY_TYPE", "sqlite")
	viper.SetDefault("DB_CONNECTION_STRING", "./data/orders.db")
	viper.SetDefault("MIGRATIONS_PATH", "./migrations")

	config := &Config{
		ServiceName: viper.GetString("SERVICE_NAME"),
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Orders: OrdersConfig{
			TableName:            viper.GetString("TABLE_NAME"),
			IdempotencyTableName: viper.GetString("IDEMPOTENCY_TABLE_NAME"),
			Region:               viper.GetString("AWS_REGION"),
		},
		Database: DatabaseConfig{
			RepositoryType:   viper.GetString("REPOSITORY_TYPE"),
			ConnectionString: viper.GetString("DB_CONNECTION_STRING"),
			MigrationsPath:   viper.GetString("MIGRATIONS_PATH"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
