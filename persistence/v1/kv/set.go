package kv

import (
	"context"
	"fmt"

	"github.com/mininotes/notes-service/sys"
)

// Set stores value under key, overwriting whatever was there
func Set(ctx context.Context, key, value string) error {
	store := sys.R.KV

	opCtx, opCancel := context.WithTimeout(ctx, sys.Configs.Store.OperationTimeout)
	defer opCancel()

	if err := store.Set(opCtx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}
