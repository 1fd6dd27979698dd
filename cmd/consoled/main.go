package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/consolekit/consoleauth/auth"
	"github.com/consolekit/consoleauth/identity"
	"github.com/consolekit/consoleauth/internal/config"
	"github.com/consolekit/consoleauth/server"
	"github.com/consolekit/consoleauth/session"
	"github.com/consolekit/consoleauth/session/kv"
	"github.com/consolekit/consoleauth/session/kv/filestore"
	"github.com/consolekit/consoleauth/session/kv/redisstore"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("recovered from panic: %v", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	// Optional .env for local development
	_ = godotenv.Load()

	c := config.New()
	displayAppname(c.GetAppName())

	handle, err := newKVStore(c)
	if err != nil {
		return fmt.Errorf("newKVStore: %w", err)
	}

	store := session.New(handle)

	authService, err := auth.NewService(store, c.GetLoginPath())
	if err != nil {
		return fmt.Errorf("auth.NewService: %w", err)
	}

	resolver := identity.NewResolver(store, identity.Identity{
		Name:  c.GetDefaultAdminName(),
		Email: c.GetDefaultAdminEmail(),
	})

	srv := &http.Server{Addr: c.GetPort(), Handler: server.New(store, authService, resolver)}
	go listenAndServe(srv)
	waitForStopSignal()
	return shutdown(srv)
}

func newKVStore(c config.StorageConfig) (kv.Store, error) {
	switch c.GetStorageBackend() {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: c.GetRedisAddr()})
		return redisstore.New(client, c.GetRedisPrefix()), nil
	default:
		return filestore.New(c.GetDataFolder())
	}
}

func listenAndServe(srv *http.Server) {
	log.Info().Str("addr", srv.Addr).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
