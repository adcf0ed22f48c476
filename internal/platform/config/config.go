// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, rotation) via constructors.
  - Zero Hidden State: No global variables are used to store config.

The rotation defaults mirror [constants]; they are exposed here so a deployment
can slow the hero banner down without a rebuild.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/masjid/internal/rotation"
)

// # Configuration Schema

// Config holds all runtime configuration for the content API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL), shared with the CMS.
	DatabaseURL      string `env:"DATABASE_URL,required,notEmpty"`
	DatabaseMaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`

	// MigrationPath overrides the embedded migrations with a directory on disk.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value Cache (Redis)
	RedisURL      string        `env:"REDIS_URL,required,notEmpty"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"2m"`

	// Cross-Origin Resource Sharing: origins ending with this suffix are allowed in production.
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"masjid.org"`

	// Rotation timings
	Rotation RotationConfig `envPrefix:"ROTATION_"`
}

// RotationConfig tunes the homepage controllers.
type RotationConfig struct {
	HeroInterval     time.Duration `env:"HERO_INTERVAL"      envDefault:"5s"`
	HeroCooldown     time.Duration `env:"HERO_COOLDOWN"      envDefault:"10s"`
	NoticeSpeed      float64       `env:"NOTICE_SPEED"       envDefault:"0.5"`
	NoticeItemHeight float64       `env:"NOTICE_ITEM_HEIGHT" envDefault:"72"`
	NoticeMobile     int           `env:"NOTICE_MOBILE_LIMIT" envDefault:"4"`
	SermonStep       float64       `env:"SERMON_STEP"        envDefault:"400"`
	SermonTolerance  float64       `env:"SERMON_TOLERANCE"   envDefault:"10"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OriginSuffix implements the CORS policy source.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}

// # Rotation Options

// HeroOptions returns the hero rotator timings.
func (r RotationConfig) HeroOptions() rotation.HeroOptions {
	return rotation.HeroOptions{Interval: r.HeroInterval, Cooldown: r.HeroCooldown}
}

// NoticeOptions returns the notice scroller settings for a viewport.
func (r RotationConfig) NoticeOptions(viewport rotation.Viewport) rotation.NoticeOptions {
	return rotation.NoticeOptions{
		Speed:       r.NoticeSpeed,
		ItemHeight:  r.NoticeItemHeight,
		Viewport:    viewport,
		MobileLimit: r.NoticeMobile,
	}
}

// SermonOptions returns the sermon scroller settings.
func (r RotationConfig) SermonOptions() rotation.SermonOptions {
	return rotation.SermonOptions{Step: r.SermonStep, Tolerance: r.SermonTolerance}
}
