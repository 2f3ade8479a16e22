package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	Discord DiscordConfig
	Party   PartyConfig
}

// DiscordConfig holds Discord connection settings
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string
}

// PartyConfig holds the lifecycle thresholds and sweep intervals
type PartyConfig struct {
	WarnAfter       time.Duration
	ExpireAfter     time.Duration
	ThreadRetention time.Duration
	SweepInterval   time.Duration
	CleanupInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Discord: DiscordConfig{
			Token:   getEnv("DISCORD_TOKEN", ""),
			AppID:   getEnv("DISCORD_APP_ID", ""),
			GuildID: getEnv("DISCORD_GUILD_ID", ""),
		},
		Party: PartyConfig{
			WarnAfter:       getDurationEnv("PARTY_WARN_AFTER", 25*time.Minute),
			ExpireAfter:     getDurationEnv("PARTY_EXPIRE_AFTER", 30*time.Minute),
			ThreadRetention: getDurationEnv("PARTY_THREAD_RETENTION", 24*time.Hour),
			SweepInterval:   getDurationEnv("PARTY_SWEEP_INTERVAL", 30*time.Second),
			CleanupInterval: getDurationEnv("CLEANUP_SWEEP_INTERVAL", 10*time.Minute),
		},
	}, nil
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Discord.Token == "" {
		errs = append(errs, errors.New("DISCORD_TOKEN is required"))
	}
	if c.Discord.AppID == "" {
		errs = append(errs, errors.New("DISCORD_APP_ID is required"))
	}
	if c.Discord.GuildID == "" {
		errs = append(errs, errors.New("DISCORD_GUILD_ID is required"))
	}

	if c.Party.WarnAfter <= 0 {
		errs = append(errs, errors.New("PARTY_WARN_AFTER must be positive"))
	}
	if c.Party.ExpireAfter <= 0 {
		errs = append(errs, errors.New("PARTY_EXPIRE_AFTER must be positive"))
	}
	if c.Party.ExpireAfter <= c.Party.WarnAfter {
		errs = append(errs, errors.New("PARTY_EXPIRE_AFTER must be greater than PARTY_WARN_AFTER"))
	}
	if c.Party.ThreadRetention <= 0 {
		errs = append(errs, errors.New("PARTY_THREAD_RETENTION must be positive"))
	}
	if c.Party.SweepInterval <= 0 {
		errs = append(errs, errors.New("PARTY_SWEEP_INTERVAL must be positive"))
	}
	if c.Party.CleanupInterval <= 0 {
		errs = append(errs, errors.New("CLEANUP_SWEEP_INTERVAL must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
