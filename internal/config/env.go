package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// EnvBool returns the boolean value of the environment variable key, or
// fallback when it is unset. Invalid values log a warning and fall back.
func EnvBool(key string, fallback bool) bool {
	return envValue(key, fallback, strconv.ParseBool, nil)
}

// EnvInt returns the positive integer value of the environment variable
// key, or fallback when it is unset, invalid or not positive.
func EnvInt(key string, fallback int) int {
	return envValue(key, fallback, strconv.Atoi, func(n int) bool { return n > 0 })
}

// EnvDuration returns the positive duration value of the environment
// variable key, such as "30s" or "15m", or fallback.
func EnvDuration(key string, fallback time.Duration) time.Duration {
	return envValue(key, fallback, time.ParseDuration, func(d time.Duration) bool { return d > 0 })
}

func envValue[T any](key string, fallback T, parse func(string) (T, error), valid func(T) bool) T {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := parse(v)
	if err != nil || (valid != nil && !valid(parsed)) {
		slog.Warn("invalid env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return parsed
}
