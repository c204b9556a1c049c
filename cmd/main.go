package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"librarygateway/internal/catalog"
	"librarygateway/internal/config"
	"librarygateway/internal/handlers"
	"librarygateway/internal/metrics"
	"librarygateway/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	// Single long-lived connection to the catalog service; lifecycle is the
	// process lifetime, shared by all in-flight requests.
	client, err := catalog.Dial(cfg.CatalogTarget())
	if err != nil {
		logger.Fatal("failed to connect to catalog service",
			zap.String("target", cfg.CatalogTarget()),
			zap.Error(err),
		)
	}
	defer client.Close()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.Metrics())
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	handlers.RegisterRoutes(router, client, logger)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("gateway listening",
		zap.String("addr", cfg.ServerAddr),
		zap.String("catalog", cfg.CatalogTarget()),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
