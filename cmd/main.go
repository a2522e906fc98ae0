package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Bloody-Jeff/uzum-market-clone/internal/catalog"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/config"
	httpapi "github.com/Bloody-Jeff/uzum-market-clone/internal/http"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/repository"
	"github.com/Bloody-Jeff/uzum-market-clone/internal/service"

	_ "github.com/Bloody-Jeff/uzum-market-clone/docs"
)

// @title Uzum Market Clone API
// @version 1.0
// @description Commerce state engine: catalog, cart, favorites, checkout and orders
// @BasePath /api/v1
func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		logger.Warnf("invalid LOG_LEVEL %q, using %s", cfg.LogLevel, level)
	}
	logger.SetLevel(level)

	store := repository.NewFileStore(cfg.DataFile, logger)
	cat := catalog.NewSeeded()

	cartSvc := service.NewCartService(store, logger)
	ordersSvc := service.NewOrderService(store, logger, cfg.OrderDelay)
	authSvc := service.NewAuthService(store, logger)

	srv := httpapi.NewServer(cat, cartSvc, ordersSvc, authSvc)

	httpServer := &http.Server{
		Addr:    cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Infof("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown error: %v", err)
	}
}
