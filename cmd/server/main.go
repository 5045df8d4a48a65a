package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	applisting "github.com/resale/backend/internal/application/listing"
	apppricing "github.com/resale/backend/internal/application/pricing"
	appshipping "github.com/resale/backend/internal/application/shipping"
	"github.com/resale/backend/internal/domain/pricing"
	"github.com/resale/backend/internal/domain/shipping"
	"github.com/resale/backend/internal/infrastructure/catalogdata"
	"github.com/resale/backend/internal/infrastructure/config"
	"github.com/resale/backend/internal/infrastructure/fxrate"
	"github.com/resale/backend/internal/infrastructure/logger"
	"github.com/resale/backend/internal/infrastructure/persistence"
	"github.com/resale/backend/internal/infrastructure/tables"
	"github.com/resale/backend/internal/interfaces/http/handler"
	"github.com/resale/backend/internal/interfaces/http/middleware"
	"github.com/resale/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting resale backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Shipping and fee tables
	rateTable, err := tables.LoadRateTable(cfg.Tables.RatesPath)
	if err != nil {
		log.Fatal("Failed to load shipping rates", zap.Error(err))
	}
	zoneMap, err := tables.LoadZoneMap(cfg.Tables.ZonesPath, cfg.Tables.DefaultZone)
	if err != nil {
		log.Fatal("Failed to load shipping zones", zap.Error(err))
	}
	feeSchedule, err := tables.LoadFeeSchedule(cfg.Tables.FeesPath)
	if err != nil {
		log.Fatal("Failed to load fee schedule", zap.Error(err))
	}
	log.Info("Tables loaded",
		zap.Int("zones", len(rateTable.Zones())),
		zap.Int("countries", zoneMap.Size()),
	)

	selector := shipping.NewSelector(rateTable, zoneMap)
	engine := pricing.NewEngine(selector, feeSchedule, decimal.NewFromFloat(cfg.Fees.FlatRate))

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database connected")

	// Redis, used only for the exchange-rate cache
	var redisClient *redis.Client
	var rateCache fxrate.RateCache = fxrate.NewMemoryRateCache()
	if cfg.FX.CacheEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis unreachable, falling back to in-memory rate cache", zap.Error(err))
			redisClient = nil
		} else {
			rateCache = fxrate.NewRedisRateCache(redisClient, "")
			log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	rateProvider := fxrate.NewProvider(
		fxrate.NewHTTPFetcher(cfg.FX.APIURL, cfg.FX.Timeout),
		rateCache,
		cfg.FX.CacheTTL,
		decimal.NewFromFloat(cfg.FX.FallbackRate),
		log,
	)

	// Application services
	quoteService := appshipping.NewQuoteService(selector)
	profitService := apppricing.NewProfitService(engine, persistence.NewGormReportRepository(db.DB), rateProvider)
	searchService := applisting.NewSearchService(catalogdata.NewStaticCatalog())

	// HTTP server
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	ginEngine := gin.New()
	ginEngine.Use(middleware.RequestID())
	ginEngine.Use(logger.GinMiddleware(log))
	ginEngine.Use(logger.Recovery(log))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	ginEngine.Use(middleware.CORSWithConfig(corsCfg))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := ginEngine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	router.NewRouter(ginEngine).
		Register(handler.NewShippingHandler(quoteService)).
		Register(handler.NewProfitHandler(profitService)).
		Register(handler.NewFXHandler(rateProvider)).
		Register(handler.NewItemHandler(searchService)).
		Setup()
	handler.NewHealthHandler(db, redisClient).Register(ginEngine)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        ginEngine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

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
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}

	log.Info("Server exited gracefully")
}
