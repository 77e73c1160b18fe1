// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once
// and cached for subsequent calls.
//
// The package automatically loads a .env file on first use and parses
// environment variables into struct fields via `env` struct tags.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/webroute/config"
//
//	type ServerConfig struct {
//		Addr            string        `env:"ADDR" envDefault:":8080"`
//		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
//	}
//
//	func main() {
//		var cfg ServerConfig
//		config.MustLoad(&cfg) // panic on error
//	}
package config
