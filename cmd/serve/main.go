// Package classification DBM Ticket Clone Service.
//
// Turns existing DBM tickets into the data needed to create a new ticket of the same type.
//
//	Version: 0.1.0
//	Contact: https://github.com/xfwduke/blueking-dbm
//
//	Consumes:
//	  - application/json
//
//	Produces:
//	  - application/json
//
// swagger:meta
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xfwduke/blueking-dbm/internal/handler"
	"github.com/xfwduke/blueking-dbm/internal/log"
	"github.com/xfwduke/blueking-dbm/internal/metrics"
	"github.com/xfwduke/blueking-dbm/internal/server"
	"github.com/xfwduke/blueking-dbm/internal/tracing"
	"github.com/xfwduke/blueking-dbm/pkg/client"
	"github.com/xfwduke/blueking-dbm/pkg/clone"
	"github.com/xfwduke/blueking-dbm/pkg/config"
	"github.com/xfwduke/blueking-dbm/pkg/health"
	"github.com/xfwduke/blueking-dbm/pkg/history"
	"github.com/xfwduke/blueking-dbm/pkg/storage"
	"github.com/xfwduke/blueking-dbm/pkg/ticket"
	"github.com/xfwduke/blueking-dbm/pkg/toolbox"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Failed to run server", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	handlerOptions := &log.PrettyJSONHandlerOptions{
		HandlerOptions: slog.HandlerOptions{Level: cfg.Logging.Level},
		PrettyPrint:    cfg.Logging.Pretty,
	}
	logger := slog.New(log.New(log.NewPrettyJSONHandler(os.Stdout, handlerOptions)))
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.Setup(cfg.JaegerEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to shut down tracing", "error", err)
		}
	}()

	if err := metrics.Register(nil); err != nil {
		return fmt.Errorf("failed to register metrics: %v", err)
	}

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	cache, err := newTicketCache(logger, cfg)
	if err != nil {
		return err
	}

	dbmClient := client.New(cfg.DBMAPI.Host, cfg.DBMAPI.BasePath, cfg.DBMAPI.Token, cfg.DBMAPI.Timeout)
	ticketService := ticket.NewService(logger, dbmClient, cache)
	historyService := history.NewService(history.NewRepository(db))
	cloneService := clone.NewService(logger, ticketService, historyService, cfg.CloneBatchConcurrency)

	catalog, err := toolbox.Load()
	if err != nil {
		return err
	}

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	r := server.GetEngine(logger)
	router := r.Group(cfg.BasePath)
	router.GET("/health", health.Health)
	server.Redoc(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	clone.Routes(router, clone.NewHandler(cloneService))
	history.Routes(router, history.NewHandler(historyService))
	toolbox.Routes(router, toolbox.NewHandler(catalog))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", srv.Addr, "basePath", cfg.BasePath)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newTicketCache uses Redis if it's configured so replicas share fetched tickets. Otherwise tickets
// are cached in memory.
func newTicketCache(logger *slog.Logger, cfg config.Config) (ticket.Cache, error) {
	if cfg.Redis == nil {
		logger.Info("Caching tickets in memory", "ttl", cfg.TicketCacheTTL)
		return ticket.NewMemoryCache(cfg.TicketCacheTTL), nil
	}

	redisClient, err := storage.NewRedis(*cfg.Redis)
	if err != nil {
		return nil, err
	}
	logger.Info("Caching tickets in Redis", "addr", redisClient.Options().Addr, "ttl", cfg.TicketCacheTTL)
	return ticket.NewRedisCache(redisClient, cfg.TicketCacheTTL), nil
}
