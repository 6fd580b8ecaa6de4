package note

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mininotes/notes-service/persistence/v1/kv"
	"github.com/mininotes/notes-service/sys"
)

// List fetches every note under the user's namespace, ids stripped of the
// prefix. Keys whose value vanished between scan and get are skipped.
func List(ctx context.Context, userID string) ([]Note, error) {
	logger := sys.R.Log

	prefix := Prefix(userID)
	keys, err := kv.ListKeys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(keys))
	for _, key := range keys {
		value, found, err := kv.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}

		var record Record
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			logger.Errorw("skipping unparsable note", "key", key, "error", err)
			continue
		}

		notes = append(notes, Note{
			Key:       strings.TrimPrefix(key, prefix),
			Text:      record.Text,
			CreatedAt: record.CreatedAt,
		})
	}

	return notes, nil
}
