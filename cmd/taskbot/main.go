package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"task-manager-bot/internal/bot"
	"task-manager-bot/internal/chat"
	"task-manager-bot/internal/config"
	"task-manager-bot/internal/digest"
	"task-manager-bot/internal/httpserver"
	"task-manager-bot/internal/repository"
	"task-manager-bot/internal/service"
	"task-manager-bot/internal/whatsapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	taskSvc := service.NewTaskService(taskRepo)
	categorySvc := service.NewCategoryService(categoryRepo)

	interpreter := chat.NewInterpreter(taskSvc, categorySvc, logger)
	sender := whatsapp.NewClient(cfg.WhatsApp.Token, cfg.WhatsApp.PhoneNumberID, logger)

	srv, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPPort,
		Mode:        cfg.GinMode,
		Tasks:       taskSvc,
		Categories:  categorySvc,
		Interpreter: interpreter,
		Sender:      sender,
		VerifyToken: cfg.WhatsApp.VerifyToken,
	})
	if err != nil {
		logger.Fatal("http server", zap.Error(err))
	}

	var telegramBot *bot.Bot
	if cfg.Telegram.Token != "" {
		telegramBot, err = bot.New(cfg.Telegram.Token, interpreter, logger)
		if err != nil {
			logger.Fatal("telegram bot", zap.Error(err))
		}
		go func() {
			if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("telegram bot stopped", zap.Error(err))
			}
		}()
	}

	if cfg.Digest.Time != "" {
		digestSvc := digest.New(taskSvc, categorySvc)
		scheduler := service.NewSchedulerService(time.Local)
		_, err := scheduler.ScheduleDaily(cfg.Digest.Time, func() {
			sendDigest(logger, digestSvc, sender, telegramBot, cfg.Digest)
		})
		if err != nil {
			logger.Fatal("schedule digest", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	logger.Info("task manager bot started")
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

func sendDigest(logger *zap.Logger, digestSvc *digest.Service, sender *whatsapp.Client, telegramBot *bot.Bot, cfg config.DigestConfig) {
	jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := digestSvc.Summary(jobCtx, time.Now())
	if err != nil {
		logger.Error("build digest", zap.Error(err))
		return
	}

	if cfg.WhatsAppTo != "" {
		if err := sender.SendText(jobCtx, cfg.WhatsAppTo, summary); err != nil {
			logger.Error("send whatsapp digest", zap.Error(err))
		}
	}
	if cfg.TelegramTo != 0 && telegramBot != nil {
		if err := telegramBot.SendText(cfg.TelegramTo, summary); err != nil {
			logger.Error("send telegram digest", zap.Error(err))
		}
	}
}

func newLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(parsed)
	}
	return config.Build()
}
