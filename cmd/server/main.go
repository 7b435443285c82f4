package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alchez/shopify-integration/internal/application/sync"
	"github.com/Alchez/shopify-integration/internal/infrastructure/cache"
	"github.com/Alchez/shopify-integration/internal/infrastructure/config"
	"github.com/Alchez/shopify-integration/internal/infrastructure/logger"
	"github.com/Alchez/shopify-integration/internal/infrastructure/persistence"
	"github.com/Alchez/shopify-integration/internal/infrastructure/shopify"
	"github.com/Alchez/shopify-integration/internal/infrastructure/taskqueue"
	"github.com/Alchez/shopify-integration/internal/interfaces/http/handler"
	"github.com/Alchez/shopify-integration/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Shopify integration",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithGormLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connected and migrated")

	// Initialize repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	attributeRepo := persistence.NewGormAttributeRepository(db.DB)
	itemGroupRepo := persistence.NewGormItemGroupRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	itemPriceRepo := persistence.NewGormItemPriceRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	salesInvoiceRepo := persistence.NewGormSalesInvoiceRepository(db.DB)
	deliveryNoteRepo := persistence.NewGormDeliveryNoteRepository(db.DB)
	payoutRepo := persistence.NewGormPayoutRepository(db.DB)
	syncSettingsRepo := persistence.NewGormSyncSettingsRepository(db.DB)
	syncLogRepo := persistence.NewGormSyncLogRepository(db.DB, log)

	// Initialize Shopify API client
	shopifyCfg := shopify.NewConfig(cfg.Shopify.ShopURL, cfg.Shopify.APIKey, cfg.Shopify.Password)
	if cfg.Shopify.Timeout > 0 {
		shopifyCfg.Timeout = cfg.Shopify.Timeout
	}
	if cfg.Shopify.MaxRetries > 0 {
		shopifyCfg.MaxRetries = cfg.Shopify.MaxRetries
	}
	shopifyClient, err := shopify.NewClient(shopifyCfg)
	if err != nil {
		if cfg.Sync.Enabled {
			log.Fatal("Failed to create Shopify client", zap.Error(err))
		}
		log.Warn("Shopify client not configured, sync triggers will be rejected", zap.Error(err))
	}

	// Job locks and task queue for single-flight sync passes
	lockStore := cache.NewJobLockStore(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, log)

	queueCfg := taskqueue.DefaultQueueConfig()
	queueCfg.JobTimeout = cfg.Sync.JobTimeout
	queue := taskqueue.NewQueue(queueCfg, lockStore, log)
	if err := queue.Start(context.Background()); err != nil {
		log.Fatal("Failed to start task queue", zap.Error(err))
	}

	// Initialize sync services
	productSync := sync.NewProductSyncService(
		shopifyClient, itemRepo, attributeRepo, itemGroupRepo, supplierRepo, itemPriceRepo, syncLogRepo,
		sync.ProductSyncConfig{
			Warehouse:       cfg.Sync.Warehouse,
			ItemGroup:       cfg.Sync.ItemGroup,
			SupplierGroup:   cfg.Sync.SupplierGroup,
			PriceList:       cfg.Sync.PriceList,
			UpdatePriceList: cfg.Sync.UpdatePriceList,
		}, log)
	payoutSync := sync.NewPayoutSyncService(
		shopifyClient, payoutRepo, salesOrderRepo, salesInvoiceRepo, deliveryNoteRepo,
		productSync, syncSettingsRepo, syncLogRepo,
		sync.PayoutSyncConfig{FeeAccountHead: cfg.Sync.FeeAccountHead}, log)
	syncService := sync.NewService(productSync, payoutSync, queue,
		sync.ServiceConfig{Enabled: cfg.Sync.Enabled && shopifyClient != nil}, log)

	// HTTP layer
	engine := router.NewEngine(cfg.App.Env, log)

	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine)
	r.Register(handler.NewSyncHandler(syncService)).
		Register(systemHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := queue.Stop(ctx); err != nil {
		log.Error("Task queue did not drain before shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
