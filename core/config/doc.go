// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env
// library for parsing environment variables into struct fields.
//
//	type ServerConfig struct {
//		Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
//		Port int    `env:"SERVER_PORT" envDefault:"8001"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is parsed only once per process. Later calls for
// the same type return the cached value, different types are cached
// independently. Reset clears the cache, which is mostly useful in tests.
package config
