package note

import (
	"context"

	"github.com/mininotes/notes-service/persistence/v1/kv"
)

// Delete removes one note by id, reporting ErrNotFound if nothing was stored under it
func Delete(ctx context.Context, userID, id string) error {
	existed, err := kv.Delete(ctx, Key(userID, id))
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}
