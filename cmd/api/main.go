package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"nextgear/internal/catalog"
	"nextgear/internal/config"
	"nextgear/internal/httpserver"
	"nextgear/internal/ledger"
	"nextgear/internal/seed"
	"nextgear/internal/store"
	"nextgear/internal/telegram"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cat := catalog.New(seed.Products()...)
	led := ledger.New(cat)
	st := store.New(cat, led)

	if cfg.BotToken != "" && cfg.AdminChatID != 0 {
		bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			logger.Fatalf("init telegram bot: %v", err)
		}
		st.SetNotifier(telegram.NewNotifier(bot, cfg.AdminChatID, logger))
		logger.Printf("order notifications enabled for chat %d", cfg.AdminChatID)
	} else {
		logger.Printf("order notifications disabled (BOT_TOKEN or ADMIN_CHAT_ID unset)")
	}

	auth := telegram.NewAuthenticator(cfg.BotToken, cfg.DevMode)
	resolver := telegram.NewIdentityResolver(auth, cfg.BotUsername, cfg.AdminUsername)
	if cfg.DevMode {
		logger.Printf("DEV_MODE: init data signature check disabled")
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Store:          st,
		Resolver:       resolver,
		AdminUsername:  cfg.AdminUsername,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
