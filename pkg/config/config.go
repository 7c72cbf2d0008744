package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvOnce sync.Once

// LoadEnv loads the named .env files into the process environment. With
// no arguments it loads the default .env from the working directory once
// per process, ignoring its absence; explicitly named files must exist.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		defaultEnvOnce.Do(func() {
			// The default .env is optional.
			_ = godotenv.Load()
		})
		return nil
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, file, err)
		}
	}
	return nil
}

// Load parses the process environment into v based on its `env` field
// tags, loading the default .env file first.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := LoadEnv(); err != nil {
		return err
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure, for configuration the
// tool cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
