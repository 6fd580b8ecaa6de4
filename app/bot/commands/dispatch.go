package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mininotes/notes-service/business/v1/note"
)

const (
	welcomeReply = "Welcome to Notes! Tap below to open the app, or use commands to manage notes."
	addUsage     = "Usage: /add <your note text>"
	noNotesReply = "No notes yet. Use /add <text> or open the mini app."
	nothingReply = "Nothing to clear."
)

// Reply is what a command produces: text to send back, optionally with the
// button opening the companion web app. Empty text means no reply at all.
type Reply struct {
	Text    string
	OpenApp bool
}

// Dispatch classifies one incoming message and runs the matching command.
// Unrecognized input yields an empty reply and touches nothing in the store.
func Dispatch(ctx context.Context, userID, text string) (Reply, error) {
	switch {
	case text == "/start":
		return Reply{Text: welcomeReply, OpenApp: true}, nil
	case strings.HasPrefix(text, "/add"):
		return add(ctx, userID, strings.TrimPrefix(text, "/add"))
	case text == "/notes":
		return list(ctx, userID)
	case text == "/clear":
		return clear(ctx, userID)
	default:
		return Reply{}, nil
	}
}

func add(ctx context.Context, userID, text string) (Reply, error) {
	created, err := note.Add(ctx, userID, text)
	if errors.Is(err, note.ErrEmptyText) {
		return Reply{Text: addUsage}, nil
	}
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: fmt.Sprintf("Saved: %q", created.Text)}, nil
}

func list(ctx context.Context, userID string) (Reply, error) {
	found, err := note.List(ctx, userID)
	if err != nil {
		return Reply{}, err
	}
	if len(found) == 0 {
		return Reply{Text: noNotesReply}, nil
	}

	lines := make([]string, 0, len(found))
	for _, n := range found {
		lines = append(lines, "• "+n.Text)
	}
	return Reply{Text: "Your notes:\n\n" + strings.Join(lines, "\n")}, nil
}

func clear(ctx context.Context, userID string) (Reply, error) {
	deleted, err := note.Clear(ctx, userID)
	if err != nil {
		return Reply{}, err
	}
	if deleted == 0 {
		return Reply{Text: nothingReply}, nil
	}
	return Reply{Text: fmt.Sprintf("Deleted %d note(s).", deleted)}, nil
}
