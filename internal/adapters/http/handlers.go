package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"mellium.im/xmpp/jid"

	"github.com/dkeye/Parley/internal/core"
	"github.com/dkeye/Parley/internal/domain"
)

type RosterEntry struct {
	Nickname    string             `json:"nickname"`
	Affiliation domain.Affiliation `json:"affiliation"`
	Role        domain.Role        `json:"role"`
}

func handleListRooms(rooms *core.RoomManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rooms.List())
	}
}

func handleRoster(rooms *core.RoomManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, err := jid.Parse(c.Param("jid"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room address"})
			return
		}
		room, ok := rooms.Get(address)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown room"})
			return
		}

		snapshot := room.Roster()
		out := make([]RosterEntry, 0, len(snapshot))
		for _, o := range snapshot {
			out = append(out, RosterEntry{
				Nickname:    o.Nickname,
				Affiliation: o.Affiliation,
				Role:        o.Role,
			})
		}
		c.JSON(http.StatusOK, out)
	}
}
