package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"liveclient-replay/internal/config"
	"liveclient-replay/internal/constants"
	fxmodules "liveclient-replay/internal/fx"
	"liveclient-replay/internal/middleware"
	"liveclient-replay/internal/server"
	"liveclient-replay/internal/service"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	liveClient *server.LiveClientServer,
	games *service.GameService,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	mux := http.NewServeMux()
	liveClient.Register(mux)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	handler := middleware.RequestID(logger)(c.Handler(mux))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: handler,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.AutoStart {
				if err := games.StartGame(ctx); err != nil {
					return fmt.Errorf("starting replay session: %w", err)
				}
			}

			go func() {
				logger.Info().Str("addr", srv.Addr).Bool("tls", cfg.TLSCert != "").Msg("live client data server starting")
				var err error
				if cfg.TLSCert != "" {
					// The real client serves HTTPS with a self-signed cert;
					// pollers already skip verification.
					err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
				} else {
					err = srv.ListenAndServe()
				}
				if err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing cache database")
			}

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
