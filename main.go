package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	intconfig "idn-area/internal/config"
	router "idn-area/internal/http"
	"idn-area/internal/http/handlers"
	"idn-area/internal/logger"
	"idn-area/internal/metrics"
	"idn-area/internal/pagination"
	"idn-area/internal/response"
	"idn-area/internal/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := intconfig.LoadEnv()
	if err != nil {
		logger.Setup("info", "text")
		return err
	}
	log := logger.Setup(env.LogLevel, env.LogFormat)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx := context.Background()
	db, err := intconfig.ConnectDB(ctx, env)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Warn("close database", "error", err)
		}
	}()
	log.Info("connected to database", "provider", env.Provider.Provider)

	stores, err := db.Stores()
	if err != nil {
		return err
	}

	p := pagination.New(env.DefaultPageSize)
	handler := &handlers.Handler{
		Provinces:   services.ProvinceService{Provinces: stores.Provinces, Paginator: p},
		Regencies:   services.RegencyService{Stores: stores, Paginator: p},
		Districts:   services.DistrictService{Stores: stores, Paginator: p},
		Villages:    services.VillageService{Stores: stores, Paginator: p},
		Islands:     services.IslandService{Stores: stores, Paginator: p},
		Transformer: response.ForCapability(env.Provider),
		MaxLimit:    env.MaxPageSize,
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := router.NewRouter(handler, router.Options{
		Logger:      log,
		Metrics:     metrics.New(reg),
		Gatherer:    reg,
		CORSOrigins: env.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped cleanly")
	return nil
}
