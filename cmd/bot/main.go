package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Heaven123321/tekbir-backend/internal/bot"
	"github.com/Heaven123321/tekbir-backend/internal/config"
	"github.com/Heaven123321/tekbir-backend/internal/dialog"
	"github.com/Heaven123321/tekbir-backend/internal/domain/products"
	httpx "github.com/Heaven123321/tekbir-backend/internal/infra/http"
	"github.com/Heaven123321/tekbir-backend/internal/infra/logger"
	"github.com/Heaven123321/tekbir-backend/internal/infra/sheets"
	"github.com/Heaven123321/tekbir-backend/internal/reservation"
)

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sheets.New(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName, cfg.Sheets.CredentialsFile)
	if err != nil {
		log.Error("sheets connect failed", "err", err)
		return
	}
	log.Info("sheets connected", "spreadsheet", cfg.Sheets.SpreadsheetID, "sheet", cfg.Sheets.SheetName)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram connect failed", "err", err)
		return
	}
	log.Info("telegram connected", "bot", api.Self.UserName)

	productsRepo := products.NewRepo(store)
	reserve := reservation.New(productsRepo, log)
	dialogs := dialog.NewStore()

	tg := bot.New(api, log, cfg.Telegram.AdminChatID, cfg.Telegram.WebAppURL, dialogs, productsRepo, reserve)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, tg, log)
	go func() {
		if err := srv.Start(); err != nil {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	go func() {
		if err := tg.Run(ctx, 30); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("bot stopped", "err", err)
		}
	}()
	log.Info("bot started")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
