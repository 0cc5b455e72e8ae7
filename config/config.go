package config

import "os"

// Runtime configuration, loaded from the environment. Load must be called
// after the .env file has been read.
var (
	Port string

	// DatabaseDriver selects the backing engine: "postgres" or "sqlite".
	DatabaseDriver string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	SqlitePath string
)

// Load reads the configuration values from the environment, falling back to
// development defaults.
func Load() {
	Port = getEnv("PORT", "5000")

	DatabaseDriver = getEnv("DATABASE_DRIVER", "postgres")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "frolftracker")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "frolftracker")
	PostgresDB = getEnv("POSTGRES_DB", "frolftracker")

	SqlitePath = getEnv("SQLITE_PATH", "development.db")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
