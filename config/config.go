package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache       sync.Map // reflect.Type -> parsed config value
	loadEnvOnce sync.Once
)

// Load populates cfg from environment variables using `env` struct
// tags. Each configuration type is parsed once per process and cached;
// subsequent calls for the same type receive the cached value. A .env
// file in the working directory is loaded on first use when present.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	loadEnvOnce.Do(func() {
		// A missing .env file is fine, the environment may be set
		// directly.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	cache.Store(typ, *cfg)
	return nil
}

// MustLoad is Load, panicking on failure. Useful at application
// startup where a missing required variable should abort immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
