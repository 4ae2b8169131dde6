// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. Load
// reads the default .env file once (a missing file is fine), parses the
// environment into a struct using its env tags and caches the result per
// type, so later calls for the same type are free. A struct that implements
// Validator is validated after parsing and is not cached when invalid.
//
//	var cfg auth.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadEnv loads specific .env files; ResetCache and ForceReload exist for
// tests that change the environment between loads.
package config
