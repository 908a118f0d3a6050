package config

import (
	"time"
)

type CatalogConfig struct {
	SeedOnStart       bool          `yaml:"seed_on_start"`
	SeedReadyAttempts int           `yaml:"seed_ready_attempts"`
	SeedReadyInterval time.Duration `yaml:"seed_ready_interval"`
	SeedInsertTimeout time.Duration `yaml:"seed_insert_timeout"`
	FeaturedIDs       []string      `yaml:"featured_ids"`
}

func loadCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		// Seeding stays off in test mode so suites never race a background
		// populate against their fixtures.
		SeedOnStart:       getEnvAsBool("CATALOG_SEED_ON_START", !IsTest()),
		SeedReadyAttempts: getEnvAsInt("CATALOG_SEED_READY_ATTEMPTS", 10),
		SeedReadyInterval: getEnvAsDuration("CATALOG_SEED_READY_INTERVAL", 2*time.Second),
		SeedInsertTimeout: getEnvAsDuration("CATALOG_SEED_INSERT_TIMEOUT", 2*time.Minute),
		FeaturedIDs:       getEnvAsSlice("CATALOG_FEATURED_IDS", nil),
	}
}
