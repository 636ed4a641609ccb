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
	"mellium.im/xmpp/jid"

	router "github.com/dkeye/Parley/internal/adapters/http"
	"github.com/dkeye/Parley/internal/adapters/ws"
	"github.com/dkeye/Parley/internal/config"
	"github.com/dkeye/Parley/internal/core"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	rooms := core.NewRoomManager()

	if cfg.Room != "" {
		address, err := jid.Parse(cfg.Room)
		if err != nil {
			log.Error().Err(err).Str("room", cfg.Room).Msg("invalid room address")
		} else {
			room := rooms.GetOrCreate(address, cfg.Nickname)
			if cfg.Password != "" {
				room.SetPassword(cfg.Password)
			}
			conn, err := ws.Dial(ctx, cfg.ServerURL)
			if err != nil {
				log.Error().Err(err).Str("url", cfg.ServerURL).Msg("transport dial failed, room stays detached")
			} else {
				defer conn.Close()
				room.SetTransport(conn)
				room.Rejoin()
			}
		}
	}

	r := router.SetupRouter(cfg, rooms)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Parley status API started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
