package main

import (
	"Roshambo/internal/config"
	"Roshambo/internal/console"
	"Roshambo/internal/feed"
	"Roshambo/internal/game"
	"Roshambo/internal/handlers"
	"Roshambo/internal/logger"
	"Roshambo/internal/routes"
	"Roshambo/internal/services"
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"
)

const spectatorTokenTTL = 12 * time.Hour

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	logger.Init(os.Stderr, cfg.LogLevel, cfg.LogJSON)

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = game.NewSeed(); err != nil {
			config.Exitf("Error: %v", err)
		}
	}
	slog.Debug("Move source seeded", "seed", seed)

	history := game.NewHistory()
	hub := feed.NewHub()
	session := console.NewSession(os.Stdin, os.Stdout, game.NewRandomSource(seed), history, hub)

	var srv *http.Server
	if cfg.SpectatorEnabled() {
		srv = startSpectatorServer(cfg, history, session, hub)
	}

	runErr := session.Run()

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("Spectator server shutdown failed", "error", err)
		}
		cancel()
	}
	if runErr != nil {
		config.Exitf("Error: %v", runErr)
	}
}

func startSpectatorServer(cfg config.Config, history *game.History, session *console.Session, hub *feed.Hub) *http.Server {
	handler := &handlers.Handler{
		History:       history,
		Scores:        session,
		Hub:           hub,
		AllowedOrigin: cfg.SpectatorOrigin,
	}

	srv := &http.Server{
		Addr:              cfg.SpectatorAddr,
		Handler:           routes.New(handler, cfg.SpectatorSecret),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Spectator server stopped", "addr", cfg.SpectatorAddr, "error", err)
		}
	}()
	slog.Info("Spectator API listening", "addr", cfg.SpectatorAddr, "auth", cfg.SpectatorSecret != "")

	if cfg.SpectatorSecret != "" {
		// The player name is not known yet; the token is for the session.
		token, err := services.IssueSpectatorToken(cfg.SpectatorSecret, services.Claims{ID: "session", Username: "spectator"}, spectatorTokenTTL)
		if err != nil {
			slog.Error("Could not issue spectator token", "error", err)
		} else {
			slog.Warn("Spectator token issued", "token", token, "expires_in", spectatorTokenTTL)
		}
	}
	return srv
}
