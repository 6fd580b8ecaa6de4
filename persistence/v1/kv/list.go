package kv

import (
	"context"
	"fmt"

	"github.com/mininotes/notes-service/sys"
)

// ListKeys collects every key under prefix. Order is whatever the store yields.
func ListKeys(ctx context.Context, prefix string) ([]string, error) {
	store := sys.R.KV

	opCtx, opCancel := context.WithTimeout(ctx, sys.Configs.Store.OperationTimeout)
	defer opCancel()

	var keys []string
	iter := store.Scan(opCtx, 0, prefix+"*", 0).Iterator()
	for iter.Next(opCtx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan prefix %s: %w", prefix, err)
	}
	return keys, nil
}
