package kv

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/mininotes/notes-service/sys"
)

// Get fetches the value stored under key. The second return reports whether the key exists.
func Get(ctx context.Context, key string) (string, bool, error) {
	store := sys.R.KV

	opCtx, opCancel := context.WithTimeout(ctx, sys.Configs.Store.OperationTimeout)
	defer opCancel()

	value, err := store.Get(opCtx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, true, nil
}
