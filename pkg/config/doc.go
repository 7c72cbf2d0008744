// Package config loads tool configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// LoadEnv reads one or more .env files into the process environment
// (silently skipping a missing default .env), and Load parses the
// environment into any annotated struct. There is no cache — analyst
// tools are short-lived processes and reloading is cheap and predictable.
//
// # Usage
//
//	type Config struct {
//	    LogLevel string `env:"DATAKIT_LOG_LEVEL" envDefault:"info"`
//	    OutDir   string `env:"DATAKIT_OUT_DIR" envDefault:"."`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error handling
//
// Sentinel errors compare with errors.Is: ErrNilPointer for a nil
// destination, ErrParsingConfig wrapping the underlying parse failure.
package config
