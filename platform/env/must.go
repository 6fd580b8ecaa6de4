package env

import (
	"os"

	"go.uber.org/zap"
)

// Must return the result of searching an env var, panics if the env var is empty
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Panic("missing required env var ", env)
	}
	return value
}
