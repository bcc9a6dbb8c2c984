package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the bot.
type Config struct {
	// Discord bot token
	DiscordToken string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Directory holding playerData.json, tribes.json and pronouns.json
	DataDir string

	// Path to the boot-time role configuration file
	RolesFile string

	// Redis connection for the challenge store
	RedisAddr     string
	RedisPassword string

	// How long an unanswered challenge survives
	ChallengeTTL time.Duration
}

// Load reads configuration from environment variables. A .env file is
// loaded first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:  os.Getenv("DISCORD_TOKEN"),
		ApplicationID: os.Getenv("APPLICATION_ID"),
		GuildID:       os.Getenv("GUILD_ID"),
		DataDir:       getEnvOrDefault("DATA_DIR", "./data"),
		RolesFile:     getEnvOrDefault("ROLES_FILE", "./roles.yaml"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		ChallengeTTL:  24 * time.Hour,
	}

	if ttl := os.Getenv("CHALLENGE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid CHALLENGE_TTL: %w", err)
		}
		cfg.ChallengeTTL = d
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN environment variable is required")
	}

	return cfg, nil
}

// getEnvOrDefault gets an environment variable or returns a default value.
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
