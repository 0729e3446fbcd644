// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: dotenv
// files are read into a map, merged under the environment, and the result is
// parsed into a struct using env tags:
//
//	type Config struct {
//	    Lang     string `env:"FORMCHECK_LANG" envDefault:"en"`
//	    Strict   bool   `env:"FORMCHECK_STRICT"`
//	    LogLevel string `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// By default the process environment is used and ./.env is read when it
// exists. WithEnvironment substitutes an explicit map, which keeps tests
// hermetic. WithEnvFiles names dotenv files that must exist.
//
// Load never modifies the process environment.
//
// Errors wrap ErrParsingConfig, ErrEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config
