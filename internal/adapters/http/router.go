package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Parley/internal/config"
	"github.com/dkeye/Parley/internal/core"
)

func SetupRouter(cfg *config.Config, rooms *core.RoomManager) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	log.Info().Str("module", "adapters.http").Msg("router setup")

	api := r.Group("/api")
	api.GET("/rooms", handleListRooms(rooms))
	api.GET("/rooms/:jid/roster", handleRoster(rooms))

	return r
}
