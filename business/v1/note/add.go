package note

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mininotes/notes-service/persistence/v1/kv"
)

// Add trims and stores text as a new note under the user's namespace.
// The id is the first 8 chars of a random UUID; there is no existence
// check before the write.
func Add(ctx context.Context, userID, text string) (Note, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Note{}, ErrEmptyText
	}

	id := uuid.NewString()[:8]
	record := Record{
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return Note{}, fmt.Errorf("failed to marshal note: %w", err)
	}

	if err := kv.Set(ctx, Key(userID, id), string(data)); err != nil {
		return Note{}, err
	}

	return Note{Key: id, Text: record.Text, CreatedAt: record.CreatedAt}, nil
}
