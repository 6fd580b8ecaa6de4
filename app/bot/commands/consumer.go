package commands

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mininotes/notes-service/sys"
)

// Menu is the command list advertised to the chat client on startup
var Menu = []tgbotapi.BotCommand{
	{Command: "start", Description: "Open the Notes mini app"},
	{Command: "add", Description: "Add a note — /add Buy groceries"},
	{Command: "notes", Description: "List your saved notes"},
	{Command: "clear", Description: "Delete all your notes"},
}

// The pinned client library predates Telegram's web_app button type, so the
// start markup is assembled by hand and serialized into reply_markup as-is.
type webAppInfo struct {
	URL string `json:"url"`
}

type webAppButton struct {
	Text   string     `json:"text"`
	WebApp webAppInfo `json:"web_app"`
}

type webAppMarkup struct {
	InlineKeyboard [][]webAppButton `json:"inline_keyboard"`
}

func openAppMarkup(url string) webAppMarkup {
	return webAppMarkup{
		InlineKeyboard: [][]webAppButton{{
			{Text: "Open Notes App", WebApp: webAppInfo{URL: url}},
		}},
	}
}

// Consume pulls updates until the channel closes or ctx is cancelled,
// handling each in its own goroutine bounded by maxWorkers. The worker slot
// is reserved before spawning so drain always waits for in-flight handlers.
func Consume(ctx context.Context, bot *tgbotapi.BotAPI, updates tgbotapi.UpdatesChannel, maxWorkers int) {
	workers := make(chan int, maxWorkers)

	for {
		select {
		case <-ctx.Done():
			drain(workers, maxWorkers)
			return
		case update, ok := <-updates:
			if !ok {
				drain(workers, maxWorkers)
				return
			}
			workers <- 1
			go func(update tgbotapi.Update) {
				defer func() { <-workers }()

				handle(ctx, bot, update)
			}(update)
		}
	}
}

// drain waits for in-flight handlers by filling every worker slot
func drain(workers chan int, maxWorkers int) {
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}
}

func handle(ctx context.Context, bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	logger := sys.R.Log

	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	reply, err := Dispatch(ctx, strconv.FormatInt(msg.From.ID, 10), msg.Text)
	if err != nil {
		logger.Errorw("command failed", "command", msg.Text, "error", err)
		return
	}
	if reply.Text == "" {
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply.Text)
	if reply.OpenApp {
		out.ReplyMarkup = openAppMarkup(sys.Configs.Bot.WebAppURL)
	}

	if _, err := bot.Send(out); err != nil {
		logger.Errorw("failed to send reply", "chat", msg.Chat.ID, "error", err)
	}
}
