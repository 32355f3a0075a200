package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-kasir.git/internal/bootstrap"
	"github.com/ariefcatur/go-kasir.git/internal/config"
	kafkax "github.com/ariefcatur/go-kasir.git/internal/kafka"
	"github.com/ariefcatur/go-kasir.git/internal/logx"
	"github.com/ariefcatur/go-kasir.git/internal/printer"
	"github.com/ariefcatur/go-kasir.git/internal/redisx"
	"github.com/ariefcatur/go-kasir.git/internal/sales"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger, err := logx.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.KafkaEnabled() {
		logger.Fatal("printer needs KAFKA_BROKERS")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	// Redis untuk dedup event
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.UTC
	}

	svc := &printer.Service{
		Profiles:    &sales.Profiles{Store: store},
		Redis:       rdb,
		Dir:         cfg.ReceiptDir,
		Location:    loc,
		ServiceName: cfg.ServiceName + "-printer",
		Log:         logger,
	}

	topics := []string{sales.TopicTransactionCommitted, sales.TopicTransactionEdited}
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.PrinterGroup, topics, cfg.PrinterWorkers, logger)

	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("printer consumer started",
			zap.String("group", cfg.PrinterGroup),
			zap.Strings("topics", topics),
			zap.Int("workers", cfg.PrinterWorkers),
			zap.String("dir", cfg.ReceiptDir))
		if err := cons.Start(ctx, svc.HandleTransaction); err != nil {
			logger.Error("consumer exit", zap.Error(err))
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	logger.Info("shutting down printer...")
	cancel()
	<-done
}
