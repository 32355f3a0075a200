package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-kasir.git/internal/bootstrap"
	"github.com/ariefcatur/go-kasir.git/internal/config"
	"github.com/ariefcatur/go-kasir.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-kasir.git/internal/kafka"
	"github.com/ariefcatur/go-kasir.git/internal/logx"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store
	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.Warn("unknown receipt time zone, using UTC", zap.String("tz", cfg.TimeZone))
		loc = time.UTC
	}

	catalog := &sales.Catalog{Store: store}
	ledger := &sales.Ledger{Store: store}
	profiles := &sales.Profiles{Store: store}

	// Kafka producers (opsional)
	var committed, edited httpx.Publisher
	var producers []*kafkax.Producer
	if cfg.KafkaEnabled() {
		pc := kafkax.NewProducer(cfg.KafkaBrokers, sales.TopicTransactionCommitted, 256, logger)
		pe := kafkax.NewProducer(cfg.KafkaBrokers, sales.TopicTransactionEdited, 256, logger)
		pc.Start()
		pe.Start()
		committed, edited = pc, pe
		producers = append(producers, pc, pe)
	} else {
		logger.Info("KAFKA_BROKERS empty, event publishing disabled")
	}

	// Handlers
	router := httpx.NewRouter(logger)
	(&httpx.ProductsHandler{Catalog: catalog, Log: logger}).Register(router)
	(&httpx.CartHandler{
		Catalog:   catalog,
		Checkout:  sales.NewCheckout(ledger),
		Committed: committed,
		Service:   cfg.ServiceName,
		Log:       logger,
	}).Register(router)
	(&httpx.TransactionsHandler{
		Ledger:   ledger,
		Profiles: profiles,
		Edited:   edited,
		Service:  cfg.ServiceName,
		Location: loc,
		Log:      logger,
	}).Register(router)
	(&httpx.StoreHandler{Profiles: profiles}).Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		logger.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr), zap.String("backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := srv.Shutdown(ctx2); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	for _, p := range producers {
		p.Close() // tutup inbox -> flush & close writer
	}
	for _, p := range producers {
		p.WaitClosed()
	}
}
