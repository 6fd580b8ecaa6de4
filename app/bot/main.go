package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mininotes/notes-service/app/api/handlers"
	"github.com/mininotes/notes-service/app/bot/commands"
	"github.com/mininotes/notes-service/platform/env"
	"github.com/mininotes/notes-service/platform/logger"
	"github.com/mininotes/notes-service/sys"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

func main() {

	log, err := logger.New("Notes-Bot")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	sys.Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "8081")
	sys.Configs.Store.ConnectionURL = env.OrDefault(log, "STORE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Store.User = env.OrDefault(log, "STORE_USER", "")
	sys.Configs.Store.Pass = env.OrDefault(log, "STORE_PASS", "")
	sys.Configs.Store.PingTimeout = env.DurationDefault(log, "STORE_PING_TIMEOUT", "2s")
	sys.Configs.Store.OperationTimeout = env.DurationDefault(log, "STORE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Bot.Token = env.Must(log, "BOT_TOKEN")
	sys.Configs.Bot.WebAppURL = env.Must(log, "BOT_WEB_APP_URL")
	sys.Configs.Bot.MaxWorkers = env.IntDefault(log, "BOT_MAX_WORKERS", "1")
	sys.Configs.Bot.UpdateTimeout = env.IntDefault(log, "BOT_UPDATE_TIMEOUT", "30")

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr:     sys.Configs.Store.ConnectionURL,
			Username: sys.Configs.Store.User,
			Password: sys.Configs.Store.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Store.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("could not close redis conn gracefully: %s", err)
		}
	}()

	sys.R.KV = rdb

	// =======================================================================================================
	// Bot configuration

	bot, err := tgbotapi.NewBotAPI(sys.Configs.Bot.Token)
	if err != nil {
		return fmt.Errorf("could not connect to telegram: %w", err)
	}
	log.Infow("startup", "bot", bot.Self.UserName)

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands.Menu...)); err != nil {
		return fmt.Errorf("could not register bot commands: %w", err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = sys.Configs.Bot.UpdateTimeout
	updates := bot.GetUpdatesChan(updateConfig)

	// =======================================================================================================
	// Healthcheck server

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/health"},
	}), gin.Recovery())

	handlers.MapDefaults(router)

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%s", sys.Configs.Http.Port),
		Handler: router,
	}

	go func() {
		log.Info("started healthcheck http server")
		if err := svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("error in healthcheck http server: %s", err)
		}
	}()

	// =======================================================================================================
	// App start and shutdown

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		sig := <-shutdown
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)
		bot.StopReceivingUpdates()
		cancelFunc()
	}()

	log.Info("started bot update consumer")
	commands.Consume(withCancel, bot, updates, sys.Configs.Bot.MaxWorkers)

	return nil
}
