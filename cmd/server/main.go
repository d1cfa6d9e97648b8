package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"horizonx-storefront/internal/adapters/backend"
	httpadapter "horizonx-storefront/internal/adapters/http"
	"horizonx-storefront/internal/adapters/http/middleware"
	"horizonx-storefront/internal/adapters/http/view"
	"horizonx-storefront/internal/application/account"
	"horizonx-storefront/internal/application/product"
	"horizonx-storefront/internal/config"
	"horizonx-storefront/internal/logger"
	"horizonx-storefront/internal/workers"

	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		stop()
		os.Exit(1)
	}

	log.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	store, closeStore, err := openSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	apiClient, err := backend.NewClient(cfg, log)
	if err != nil {
		return err
	}

	renderer, err := view.NewRenderer(log)
	if err != nil {
		return err
	}

	accountService := account.NewService(apiClient)
	productService := product.NewService(apiClient)

	sessions := middleware.NewSessionManager(store, cfg.SessionTTL, cfg.CookieSecure, log)

	accountHandler := httpadapter.NewAccountHandler(accountService, sessions, renderer, log)
	productHandler := httpadapter.NewProductHandler(productService, sessions, renderer, log)

	router := httpadapter.NewRouter(cfg, &httpadapter.RouterDeps{
		Account:  accountHandler,
		Product:  productHandler,
		Sessions: sessions,
		Log:      log,
	})

	srv := httpadapter.NewServer(router, cfg.Address)

	g, gCtx := errgroup.WithContext(ctx)

	workers.NewManager(log, workers.NewScheduler(log), store, cfg.SessionSweepInterval).Start(gCtx)

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address, "api", cfg.APIBaseURL, "sessions", cfg.SessionDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http: server shutdown error", "error", err)
			return err
		}
		return nil
	})

	return g.Wait()
}
