// Package config loads typed configuration from environment variables.
//
// Struct fields are annotated with `env` tags understood by
// github.com/caarlos0/env; .env files are read with github.com/joho/godotenv.
// Each configuration type is parsed once and cached, so repeated Load calls
// are cheap and consistent across the process.
//
//	var cfg struct {
//	    LogLevel string `env:"AUTHINPUT_LOG_LEVEL" envDefault:"info"`
//	}
//	config.MustLoad(&cfg)
//
// Tests that change the environment call ResetCache or ForceReload.
package config
