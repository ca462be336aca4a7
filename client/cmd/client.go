package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/greenloop/marketplace/client/internal/controller"
	clientOtel "github.com/greenloop/marketplace/client/internal/otel"
	"github.com/greenloop/marketplace/client/internal/service"
	"github.com/greenloop/marketplace/client/internal/store"
	"github.com/greenloop/marketplace/internal/config"
	"github.com/greenloop/marketplace/internal/constants"
	"github.com/greenloop/marketplace/internal/infra"
	"github.com/greenloop/marketplace/internal/log"
	"github.com/greenloop/marketplace/internal/middleware"
	inOtel "github.com/greenloop/marketplace/internal/otel"
)

func RunClientService(c context.Context) {
	c, span := clientOtel.Tracer.Start(c, "RunClientService")
	defer span.End()

	cfg := config.Get(c, constants.AppClientService)

	logger := log.Get(filepath.Join("/var/log", constants.AppClientService+".log"), cfg.Application.Env).
		With().
		Str(log.KeyAppName, constants.AppClientService).
		Str(log.KeyTag, "main RunClientService").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Use(
		otelmux.Middleware(constants.AppClientService),
		middleware.Logging,
		middleware.RecoverPanic,
	)
	logger.Info().Msg("initialized router")

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	otelShutdowns, err := inOtel.InitOtelSdk(c, constants.AppClientService, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	defer func() {
		logger.Info().Msg("shutting down otel")
		c = logger.WithContext(c)
		if err := inOtel.ShutdownOtel(c, otelShutdowns); err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown otel")
	}()
	logger.Info().Msg("initialized otel sdk")

	logger = logger.With().
		Str(log.KeyProcess, "initializing persistence adapter").
		Str(log.KeyStoreBackend, cfg.Store.Backend).
		Str(log.KeyStoreProfile, cfg.Store.Profile).
		Logger()
	logger.Info().Msg("initializing persistence adapter")
	c = logger.WithContext(c)
	var adapter store.Adapter
	switch cfg.Store.Backend {
	case "redis":
		cache := infra.NewCacheClient(c, cfg.Cache)
		defer func() {
			logger.Info().Msg("shutting down cache")
			if err := cache.Close(); err != nil {
				err = fmt.Errorf("failed shutting down cache with error=%w", err)
				inOtel.RecordError(err, span)
				logger.Error().Err(err).Msg(err.Error())
				return
			}
			logger.Info().Msg("shutdown cache")
		}()
		adapter = store.NewRedisStore(cache, cfg.Store.Profile)
	default:
		dir := filepath.Join(cfg.Store.Directory, cfg.Store.Profile)
		logger = logger.With().Str(log.KeyStorePath, dir).Logger()
		fileStore, err := store.NewFileStore(dir)
		if err != nil {
			err = fmt.Errorf("failed initializing file store with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		adapter = fileStore
	}
	logger.Info().Msg("initialized persistence adapter")

	logger = logger.With().Str(log.KeyProcess, "initializing services").Logger()
	logger.Info().Msg("initializing services")
	c = logger.WithContext(c)
	cartService := service.NewCartService(c, adapter)
	orderService := service.NewOrderService(c, adapter)
	checkoutService := service.NewCheckoutService(cartService, orderService)
	logger.Info().Msg("initialized services")

	logger = logger.With().Str(log.KeyProcess, "initializing controllers").Logger()
	logger.Info().Msg("initializing controllers")
	controller.AttachCartController(router, cartService)
	authRouter := router.NewRoute().Subrouter()
	authRouter.Use(middleware.Auth)
	controller.AttachOrderController(authRouter, checkoutService, orderService)
	logger.Info().Msg("initialized controllers")

	logger = logger.With().Str(log.KeyProcess, "initializing server").Logger()
	logger.Info().Msg("initializing server")
	httpServer := http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext:  func(net.Listener) context.Context { return c },
		Handler:      router,
		ReadTimeout:  45 * time.Second,
		WriteTimeout: 45 * time.Second,
	}
	logger.Info().Msg("initialized server")

	go func() {
		logger := logger.With().Str(log.KeyProcess, "start server").Logger()
		logger.Info().Msgf("start listening request at %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("error=%w occured while server is running", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()

	<-c.Done()
	logger = logger.With().Str(log.KeyProcess, "shutting down http server").Logger()
	logger.Info().Msg("received interruption signal, shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		err = fmt.Errorf("failed shutting down http server with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("shutdown http server")
}
