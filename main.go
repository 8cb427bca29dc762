package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creator-dashboard/domain/repository"
	"creator-dashboard/infrastructure/cache"
	"creator-dashboard/infrastructure/clients/scriptgen"
	youtubeclient "creator-dashboard/infrastructure/clients/youtube"
	"creator-dashboard/infrastructure/configuration"
	"creator-dashboard/infrastructure/logger"
	"creator-dashboard/infrastructure/metrics"
	"creator-dashboard/infrastructure/persistence"
	"creator-dashboard/infrastructure/pubsub"
	"creator-dashboard/infrastructure/realtime"
	"creator-dashboard/infrastructure/servicebus"
	"creator-dashboard/infrastructure/utils"
	httpHandler "creator-dashboard/interfaces/http"
	"creator-dashboard/server"
	"creator-dashboard/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	devTokenUser := flag.String("print-dev-token", "", "print a signed bearer token for the given user id and exit")
	devTokenTTL := flag.Duration("dev-token-ttl", 24*time.Hour, "lifetime of the token printed by -print-dev-token")
	flag.Parse()

	defer recoverPanic()

	// Load env from files (non-destructive; OS env still has precedence)
	if loaded := configuration.LoadEnvFromFile("config.env", ".env"); len(loaded) > 0 {
		logger.GetLogger().WithField("files", loaded).Info("Loaded env files")
		configuration.Reload()
	}

	app := configuration.C.App

	if *devTokenUser != "" {
		token, err := utils.GenerateUserToken(*devTokenUser, "", app.SecretKey, *devTokenTTL)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Cannot sign dev token")
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	components := map[string]bool{}

	// Trending catalog
	hub := realtime.NewTrendingHub()
	var trendingHandler httpHandler.ITrendingHandler
	catalog, err := InitiateCatalog(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("YouTube catalog not available - trending routes will answer 503")
	} else {
		trendingUC := usecase.NewTrendingUsecase(catalog).
			WithBroadcaster(hub.BroadcastFetchCycle).
			WithBroadcaster(metrics.ObserveFetchCycle)
		trendingHandler = httpHandler.NewTrendingHandler(trendingUC)
	}
	components["catalog"] = trendingHandler != nil

	// Content library
	var contentHandler httpHandler.IContentHandler
	contentRepo, closeDB, err := InitiateDatabase()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Database initialization failed - content routes will answer 503")
	} else {
		defer closeDB()
		contentHandler = httpHandler.NewContentHandler(usecase.NewContentUsecase(contentRepo))
	}
	components["content"] = contentHandler != nil

	// Script generation and its event stream
	publisher, closePublisher := InitiatePublisher(ctx)
	defer closePublisher()
	components["events"] = publisher != nil
	scriptUC := usecase.NewScriptUsecase(scriptgen.NewTemplateGenerator(), publisher, configuration.C.Events.Topic)
	scriptHandler := httpHandler.NewScriptHandler(scriptUC)

	router := server.InitiateRouter(server.Handlers{
		Trending:       trendingHandler,
		TrendingStream: hub.Serve,
		Content:        contentHandler,
		Script:         scriptHandler,
		Health:         httpHandler.NewHealthHandler(components),
	}, app.SecretKey, configuration.C.Cors.AllowOrigins)

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled, "components": components}).Info("Starting application")
	httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// SSE streams stay open, so no write timeout
		WriteTimeout: 0,
	}
	g.Go(func() error {
		if app.TLSEnabled {
			cert := app.TLSCertFile
			key := app.TLSKeyFile
			if cert != "" && key != "" {
				logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
				if err := httpServer.ListenAndServeTLS(cert, key); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
			logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Graceful shutdown did not complete")
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
	logger.GetLogger().Info("Application stopped")
}

// InitiateCatalog builds the YouTube catalog client and, when a TTL is
// configured and Redis answers, puts the trending cache in front of it.
func InitiateCatalog(ctx context.Context) (repository.ICatalog, error) {
	ytConfig, err := configuration.GetYouTubeConfig()
	if err != nil {
		return nil, err
	}
	client, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
		APIKey:  ytConfig.APIKey,
		BaseURL: ytConfig.BaseURL,
		Timeout: ytConfig.Timeout,
	})
	if err != nil {
		return nil, err
	}

	redisCfg := configuration.C.RedisClient
	if redisCfg.TrendingTTLSeconds <= 0 {
		logger.GetLogger().Info("Trending cache disabled")
		return client, nil
	}
	redisClient, err := cache.NewCache(ctx,
		fmt.Sprintf("%s:%s", redisCfg.Host, redisCfg.Port),
		redisCfg.Username,
		redisCfg.Password,
		redisCfg.DB,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - trending cache disabled")
		return client, nil
	}
	ttl := time.Duration(redisCfg.TrendingTTLSeconds) * time.Second
	logger.GetLogger().WithField("ttl", ttl.String()).Info("Trending cache enabled")
	return cache.NewCachedCatalog(client, redisClient, ttl), nil
}

// InitiateDatabase opens the content store for the configured vendor and
// returns its repository plus a close function.
func InitiateDatabase() (repository.IContent, func(), error) {
	db := configuration.C.Database
	switch db.Vendor {
	case "mssql":
		conn, err := persistence.NewMSSQLDB(db.Mssql)
		if err != nil {
			return nil, nil, err
		}
		if err := persistence.EnsureContentSchemaMSSQL(conn); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		logger.GetLogger().Info("Content store: SQL Server")
		return persistence.NewContentRepositoryMSSQL(conn), func() { _ = conn.Close() }, nil
	case "mysql":
		gormDB, err := persistence.NewMySQLGormDB(db.MySql)
		if err != nil {
			return nil, nil, err
		}
		logger.GetLogger().Info("Content store: MySQL")
		closeFn := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return persistence.NewContentRepositoryGorm(gormDB), closeFn, nil
	case "postgres", "postgresql", "psql":
		conn, err := persistence.NewPostgreSQLDB(db.Psql)
		if err != nil {
			return nil, nil, err
		}
		if err := persistence.EnsureContentSchema(conn); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		logger.GetLogger().Info("Content store: PostgreSQL")
		return persistence.NewContentRepository(conn), func() { _ = conn.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unsupported database vendor %q", db.Vendor)
}

// InitiatePublisher returns the configured event publisher, or nil when
// events are disabled or the broker is unreachable.
func InitiatePublisher(ctx context.Context) (repository.IEventPublisher, func()) {
	events := configuration.C.Events
	switch events.Provider {
	case "pubsub":
		client, err := pubsub.NewPubSub(ctx, events.Pubsub.ProjectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("PubSub not available - script events disabled")
			return nil, func() {}
		}
		p := pubsub.NewPublisher(client)
		return p, func() {
			p.Close()
			_ = client.Close()
		}
	case "servicebus":
		client, err := servicebus.NewServiceBus(ctx, events.ServiceBus.Namespace)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - script events disabled")
			return nil, func() {}
		}
		return servicebus.NewPublisher(client), func() { _ = client.Close(context.Background()) }
	case "none", "":
		return nil, func() {}
	}
	logger.GetLogger().WithField("provider", events.Provider).Warn("Unknown events provider - script events disabled")
	return nil, func() {}
}
