// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for tag-driven parsing into structs. Packages
// that need configuration export an env-tagged Config struct (see
// httpserver.Config, pg.Config, cache.Config); the composition root embeds
// them and calls Load once at startup.
package config
