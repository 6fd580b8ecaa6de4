package note_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/mininotes/notes-service/business/v1/note"
	"github.com/mininotes/notes-service/sys"
	"go.uber.org/zap"
)

func setup(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	s := miniredis.RunT(t)

	sys.R.Log = zap.NewNop().Sugar()
	sys.Configs.Store.OperationTimeout = 10 * time.Second

	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
	})
	sys.R.KV = rdb

	return s
}

func TestAddAndList(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	created, err := note.Add(ctx, "42", "  Buy milk  ")
	if err != nil {
		t.Fatalf("Add: unexpected error: %v", err)
	}
	if created.Text != "Buy milk" {
		t.Fatalf("Add: should have trimmed the text, got %q", created.Text)
	}
	if len(created.Key) != 8 {
		t.Fatalf("Add: should have produced an 8 char id, got %q", created.Key)
	}

	keys := s.Keys()
	if len(keys) != 1 {
		t.Fatalf("Add: should have written exactly one key, got %v", keys)
	}
	if !strings.HasPrefix(keys[0], "notes:42:") {
		t.Fatalf("Add: key should start with the user namespace, got %q", keys[0])
	}

	raw, err := s.Get(keys[0])
	if err != nil {
		t.Fatalf("Add: stored value missing: %v", err)
	}
	var record note.Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("Add: stored value is not the expected JSON shape: %v", err)
	}
	if record.Text != "Buy milk" || record.CreatedAt.IsZero() {
		t.Fatalf("Add: stored record is wrong: %+v", record)
	}

	found, err := note.List(ctx, "42")
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].Text != "Buy milk" {
		t.Fatalf("List: should contain the added note, got %+v", found)
	}
	if found[0].Key != created.Key {
		t.Fatalf("List: id should be stripped of the namespace prefix, got %q", found[0].Key)
	}
}

func TestAddEmptyText(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	for _, text := range []string{"", "   "} {
		if _, err := note.Add(ctx, "42", text); !errors.Is(err, note.ErrEmptyText) {
			t.Fatalf("Add(%q): should fail validation, got %v", text, err)
		}
	}

	if keys := s.Keys(); len(keys) != 0 {
		t.Fatalf("Add: rejected notes should produce no writes, got %v", keys)
	}
}

func TestListSkipsUnparsableValues(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	if _, err := note.Add(ctx, "42", "keep me"); err != nil {
		t.Fatalf("Add: unexpected error: %v", err)
	}
	if err := s.Set("notes:42:corrupt1", "{not json"); err != nil {
		t.Fatalf("Set: unexpected error: %v", err)
	}

	found, err := note.List(ctx, "42")
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].Text != "keep me" {
		t.Fatalf("List: should skip the unparsable value and keep the rest, got %+v", found)
	}
}

func TestDeleteMissing(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	if _, err := note.Add(ctx, "42", "keep me"); err != nil {
		t.Fatalf("Add: unexpected error: %v", err)
	}

	if err := note.Delete(ctx, "42", "deadbeef"); !errors.Is(err, note.ErrNotFound) {
		t.Fatalf("Delete: should report not found, got %v", err)
	}

	if keys := s.Keys(); len(keys) != 1 {
		t.Fatalf("Delete: a missing id should not alter the store, got %v", keys)
	}
}

func TestClear(t *testing.T) {
	setup(t)
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		if _, err := note.Add(ctx, "42", text); err != nil {
			t.Fatalf("Add: unexpected error: %v", err)
		}
	}

	deleted, err := note.Clear(ctx, "42")
	if err != nil {
		t.Fatalf("Clear: unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("Clear: should report 3 deletions, got %d", deleted)
	}

	found, err := note.List(ctx, "42")
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("List: should be empty after clear, got %+v", found)
	}

	deleted, err = note.Clear(ctx, "42")
	if err != nil || deleted != 0 {
		t.Fatalf("Clear: empty namespace should report 0, got %d, %v", deleted, err)
	}
}

func TestNamespaceIsolation(t *testing.T) {
	setup(t)
	ctx := context.Background()

	if _, err := note.Add(ctx, "1", "mine"); err != nil {
		t.Fatalf("Add: unexpected error: %v", err)
	}
	if _, err := note.Add(ctx, "2", "theirs"); err != nil {
		t.Fatalf("Add: unexpected error: %v", err)
	}

	found, err := note.List(ctx, "2")
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].Text != "theirs" {
		t.Fatalf("List: user 2 should only see their own notes, got %+v", found)
	}
}
