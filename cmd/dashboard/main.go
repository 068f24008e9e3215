package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"campaignhub/internal/gateway"
	"campaignhub/internal/http/handlers"
	httpapi "campaignhub/internal/http/httpapi"
	"campaignhub/internal/infra"
	"campaignhub/internal/infra/credentials"
	"campaignhub/internal/infra/geoip"
	"campaignhub/internal/store"
	"campaignhub/internal/syncer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens, closeTokens, err := credentials.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("token_store", cfg.TokenStore).Msg("token store unavailable")
	}
	defer closeTokens()

	client, err := gateway.NewClient(gateway.Options{
		BaseURL:        cfg.APIBaseURL,
		Tokens:         tokens,
		Logger:         &logger,
		RequestTimeout: cfg.APITimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure backend client")
	}

	root := store.NewRoot(&logger)
	unsubscribe := root.Subscribe(func(tree store.Tree) {
		logger.Debug().
			Uint64("version", tree.Version).
			Int("campaigns", tree.Campaigns.Len()).
			Int("communities", tree.Communities.Len()).
			Int("donors", tree.Donors.Len()).
			Msg("store updated")
	})
	defer unsubscribe()

	hub := syncer.New(root, syncer.FromClient(client), &logger).
		WithPage(gateway.ListOptions{Limit: cfg.ListPageLimit})

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()

	app := handlers.NewApp(hub, client, &logger)
	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:         &logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimit:      cfg.RateLimitPerMin,
		DefaultLocale:  cfg.DefaultLocale,
		CountryLookup:  geoip.Lookup(resolver),
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		if err := hub.Run(ctx, cfg.RefreshInterval); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("syncer stopped")
		}
	}()

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("backend", client.BaseURL()).Msg("dashboard api listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
