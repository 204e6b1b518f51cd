package config

import "os"

// Config collects the environment-backed settings. Every field has a default
// suitable for local development.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	LogLevel      string
	SeedOnStart   bool
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "SweetStoreDB"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SeedOnStart:   getEnv("SEED_ON_START", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
