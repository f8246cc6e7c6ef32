package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/playmixer/goldmarket/internal/adapters/api/rest"
	"github.com/playmixer/goldmarket/internal/adapters/gateway/zarinpal"
	"github.com/playmixer/goldmarket/internal/adapters/logger"
	"github.com/playmixer/goldmarket/internal/adapters/store"
	"github.com/playmixer/goldmarket/internal/core/config"
	"github.com/playmixer/goldmarket/internal/core/market"
)

func main() {
	if err := run(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed initilize config: %w", err)
	}

	lgr, err := logger.New(cfg.LogLevel, logger.OutputPath(cfg.LogPath))
	if err != nil {
		return fmt.Errorf("failed initialize logger: %w", err)
	}

	storage, err := store.New(ctx, cfg.Store, lgr)
	if err != nil {
		return fmt.Errorf("failed initilize storage: %w", err)
	}

	gateway := zarinpal.New(cfg.Gateway, zarinpal.Logger(lgr))

	mart := market.New(cfg.Market, storage, gateway, market.Logger(lgr))

	server, err := rest.New(
		mart,
		rest.Logger(lgr),
		rest.Configure(cfg.Rest),
	)
	if err != nil {
		return fmt.Errorf("failed initialize rest server: %w", err)
	}

	err = server.Run()
	if err != nil {
		return fmt.Errorf("stop server, %w", err)
	}
	return nil
}
