package note

import (
	"context"

	"github.com/mininotes/notes-service/persistence/v1/kv"
)

// Clear deletes every note under the user's namespace one key at a time.
// Not transactional: a failure mid-loop returns the count deleted so far.
func Clear(ctx context.Context, userID string) (int, error) {
	keys, err := kv.ListKeys(ctx, Prefix(userID))
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, key := range keys {
		if _, err := kv.Delete(ctx, key); err != nil {
			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}
