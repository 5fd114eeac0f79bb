package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort          = "8082"
	DefaultTaskWorkers   = 4
	DefaultTaskStepDelay = 2 * time.Second
)

func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// RedisAddr returns the address of the idempotency-key cache; empty
// disables the guard.
func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

// JWTSecret returns the HMAC secret for bearer auth; empty disables auth.
func JWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func TaskWorkers() int {
	if v := os.Getenv("TASK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultTaskWorkers
}

// TaskStepDelay is how long each simulated processing phase takes.
func TaskStepDelay() time.Duration {
	if v := os.Getenv("TASK_STEP_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return DefaultTaskStepDelay
}
