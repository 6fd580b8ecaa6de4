package kv

import (
	"context"
	"fmt"

	"github.com/mininotes/notes-service/sys"
)

// Delete removes key from the store, reporting whether it existed
func Delete(ctx context.Context, key string) (bool, error) {
	store := sys.R.KV

	opCtx, opCancel := context.WithTimeout(ctx, sys.Configs.Store.OperationTimeout)
	defer opCancel()

	deleted, err := store.Del(opCtx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return deleted > 0, nil
}
