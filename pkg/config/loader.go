package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load populates v from the process environment using `env` struct tags.
//
// Variables from the given .env files are loaded first; a missing explicit
// file is an error. Without files, a .env in the working directory is loaded
// when present. Variables already set in the environment always win.
//
//	type Config struct {
//		Addr  string        `env:"HTTP_ADDR" envDefault:":8080"`
//		TTL   time.Duration `env:"CACHE_DEFAULT_TTL" envDefault:"60s"`
//		DBURL string        `env:"PG_CONN_URL,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// The default .env is optional.
		_ = godotenv.Load()
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
