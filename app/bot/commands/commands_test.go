package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mininotes/notes-service/app/bot/commands"
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

func dispatch(t *testing.T, userID, text string) commands.Reply {
	t.Helper()

	reply, err := commands.Dispatch(context.Background(), userID, text)
	if err != nil {
		t.Fatalf("Dispatch(%q): unexpected error: %v", text, err)
	}
	return reply
}

func TestStart(t *testing.T) {
	setup(t)

	reply := dispatch(t, "42", "/start")
	if !strings.HasPrefix(reply.Text, "Welcome to Notes!") {
		t.Fatalf("/start: unexpected reply %q", reply.Text)
	}
	if !reply.OpenApp {
		t.Fatalf("/start: reply should carry the open app button")
	}
}

func TestAddListClearScenario(t *testing.T) {
	setup(t)

	reply := dispatch(t, "42", "/add Buy milk")
	if reply.Text != `Saved: "Buy milk"` {
		t.Fatalf("/add: unexpected reply %q", reply.Text)
	}

	reply = dispatch(t, "42", "/notes")
	if !strings.Contains(reply.Text, "• Buy milk") {
		t.Fatalf("/notes: should list the saved note, got %q", reply.Text)
	}

	reply = dispatch(t, "42", "/clear")
	if reply.Text != "Deleted 1 note(s)." {
		t.Fatalf("/clear: unexpected reply %q", reply.Text)
	}

	reply = dispatch(t, "42", "/notes")
	if reply.Text != "No notes yet. Use /add <text> or open the mini app." {
		t.Fatalf("/notes: unexpected empty state reply %q", reply.Text)
	}

	reply = dispatch(t, "42", "/clear")
	if reply.Text != "Nothing to clear." {
		t.Fatalf("/clear: unexpected reply on empty namespace %q", reply.Text)
	}
}

func TestAddEmptyUsageHint(t *testing.T) {
	s := setup(t)

	reply := dispatch(t, "42", "/add   ")
	if reply.Text != "Usage: /add <your note text>" {
		t.Fatalf("/add: should answer with the usage hint, got %q", reply.Text)
	}
	if keys := s.Keys(); len(keys) != 0 {
		t.Fatalf("/add: usage hint should not write to the store, got %v", keys)
	}
}

func TestConsumeDropsUnusableUpdates(t *testing.T) {
	s := setup(t)

	updates := make(chan tgbotapi.Update, 3)
	updates <- tgbotapi.Update{}
	updates <- tgbotapi.Update{Message: &tgbotapi.Message{Text: "/add orphan"}}
	updates <- tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: 42},
		Chat: &tgbotapi.Chat{ID: 1},
		Text: "not a command",
	}}
	close(updates)

	done := make(chan struct{})
	go func() {
		commands.Consume(context.Background(), nil, updates, 2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Consume should return once the update channel closes")
	}

	if keys := s.Keys(); len(keys) != 0 {
		t.Fatalf("dropped updates should not touch the store, got %v", keys)
	}
}

func TestUnknownCommandIgnored(t *testing.T) {
	s := setup(t)

	reply := dispatch(t, "42", "hello there")
	if reply.Text != "" {
		t.Fatalf("unknown input should produce no reply, got %q", reply.Text)
	}
	if keys := s.Keys(); len(keys) != 0 {
		t.Fatalf("unknown input should not touch the store, got %v", keys)
	}
}
