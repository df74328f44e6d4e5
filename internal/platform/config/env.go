package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// OSLookup reads keys from the process environment.
func OSLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// FirstNonEmpty returns the first non-blank value found for keys, in order,
// or fallback when none is set.
func FirstNonEmpty(lookup EnvLookup, keys []string, fallback string) string {
	if lookup == nil {
		return fallback
	}
	for _, key := range keys {
		value, ok := lookup(key)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}
