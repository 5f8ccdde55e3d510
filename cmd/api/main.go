package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/f5tci/diarios-api/internal/config"
	internalhttp "github.com/f5tci/diarios-api/internal/http"
	"github.com/f5tci/diarios-api/internal/repo"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("api encerrada com erro")
	}
}

func run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx := context.Background()

	db, err := repo.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.Disconnect(disconnectCtx, db); err != nil {
			log.Error().Err(err).Msg("falha ao fechar conexão com o mongo")
		}
	}()

	handler := internalhttp.NewRouter(cfg, db)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("API ouvindo em :%d", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("encerrando...")
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
