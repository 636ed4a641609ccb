package core

import (
	"sync"

	"github.com/rs/zerolog/log"
	"mellium.im/xmpp/jid"
)

// RoomInfo is a read-only view of one managed room for APIs.
type RoomInfo struct {
	Address   string    `json:"address"`
	Nickname  string    `json:"nickname"`
	State     JoinState `json:"state"`
	Occupants int       `json:"occupants"`
}

// RoomManager tracks the rooms the client is in or attempting to join,
// keyed by bare room address.
type RoomManager struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRoomManager() *RoomManager {
	return &RoomManager{
		rooms: make(map[string]*Room),
	}
}

// GetOrCreate returns the room for address, creating a detached one (nop
// transport) on first use.
func (rm *RoomManager) GetOrCreate(address jid.JID, nickname string) *Room {
	key := address.Bare().String()

	rm.mu.RLock()
	room, ok := rm.rooms[key]
	rm.mu.RUnlock()
	if ok {
		return room
	}

	rm.mu.Lock()
	if room, ok = rm.rooms[key]; !ok {
		room = NewRoom(address, nickname, NopTransport{})
		rm.rooms[key] = room
		log.Info().Str("module", "core.manager").Str("room", key).
			Str("nickname", nickname).Msg("room created")
	}
	rm.mu.Unlock()
	return room
}

func (rm *RoomManager) Get(address jid.JID) (*Room, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	room, ok := rm.rooms[address.Bare().String()]
	return room, ok
}

func (rm *RoomManager) List() []RoomInfo {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	out := make([]RoomInfo, 0, len(rm.rooms))
	for key, room := range rm.rooms {
		out = append(out, RoomInfo{
			Address:   key,
			Nickname:  room.Nickname(),
			State:     room.State(),
			Occupants: room.OccupantCount(),
		})
	}
	return out
}

// Remove discards a room the application is done with. The instance stays
// usable for callers still holding it; it is simply no longer tracked.
func (rm *RoomManager) Remove(address jid.JID) {
	key := address.Bare().String()
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if _, ok := rm.rooms[key]; ok {
		delete(rm.rooms, key)
		log.Info().Str("module", "core.manager").Str("room", key).Msg("room removed")
	}
}
