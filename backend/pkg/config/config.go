package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Neo4j
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string

	// Offline artifacts (precomputed by the batch jobs, read-only here)
	IDFModelPath           string
	CategoryPopularityPath string
	RankDistributionsPath  string

	// Profile engine
	ProfileWorkers int // concurrent algorithm fan-out per request
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    getEnv("ENV", "development"),
		Neo4jURI:               getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:              getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:          getEnv("NEO4J_PASSWORD", "password"),
		IDFModelPath:           getEnv("IDF_MODEL_PATH", "offline_assets/idf_model.jsonl"),
		CategoryPopularityPath: getEnv("CATEGORY_POPULARITY_PATH", "offline_assets/category_top_businesses.jsonl"),
		RankDistributionsPath:  getEnv("RANK_DISTRIBUTIONS_PATH", "offline_assets/rank_distributions.json"),
		ProfileWorkers:         getEnvInt("PROFILE_WORKERS", 4),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Neo4jURI == "" {
		return fmt.Errorf("NEO4J_URI is required")
	}
	if c.Neo4jUser == "" {
		return fmt.Errorf("NEO4J_USER is required")
	}
	if c.Neo4jPassword == "" {
		return fmt.Errorf("NEO4J_PASSWORD is required")
	}
	if c.ProfileWorkers < 1 {
		return fmt.Errorf("PROFILE_WORKERS must be at least 1")
	}
	// Artifact paths are not validated here: a missing artifact file degrades
	// only the algorithms that depend on it, never startup.
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
