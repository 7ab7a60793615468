package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"medspa-backend/config"
	"medspa-backend/models"
	"medspa-backend/repository"
	"medspa-backend/routes"
	"medspa-backend/services"
)

func main() {
	path := os.Getenv("MEDSPA_CONFIG")
	if path == "" {
		path = "medspa.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := config.InitLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// prices and totals go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
	gin.SetMode(cfg.GinMode)

	db, err := config.ConnectDB(cfg.DB)
	if err != nil {
		zap.L().Fatal("database connection failed", zap.Error(err))
	}
	if err := models.AutoMigrate(db); err != nil {
		zap.L().Fatal("migration failed", zap.Error(err))
	}

	store := repository.NewStore(db)

	digest := services.NewDigestJob(store, cfg.DigestDays)
	if err := digest.Start(cfg.DigestCron); err != nil {
		zap.L().Fatal("digest scheduler failed", zap.Error(err))
	}
	defer digest.Stop()

	r := routes.SetupRouter(cfg, store)
	printRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("graceful shutdown failed", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
