package core

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"mellium.im/xmpp/jid"

	"github.com/dkeye/Parley/internal/domain"
)

// Room is the threadsafe live state of one MUC room: identity, lifecycle,
// and the confirmed and pending occupant rosters. One RWMutex guards the
// whole aggregate so no reader ever observes a half-updated composite.
// It never closes the transport it is handed.
type Room struct {
	mu          sync.RWMutex
	address     jid.JID // bare room address
	occupantJID jid.JID // cached address/nickname, rebuilt on demand
	nickname    string
	password    string
	lastMessage time.Time
	state       JoinState
	roster      map[string]*domain.Occupant
	pending     map[string]*domain.Occupant
	transport   Transport
}

func NewRoom(address jid.JID, nickname string, tr Transport) *Room {
	if tr == nil {
		tr = NopTransport{}
	}
	return &Room{
		address:   address.Bare(),
		nickname:  nickname,
		state:     NotJoined,
		roster:    make(map[string]*domain.Occupant),
		pending:   make(map[string]*domain.Occupant),
		transport: tr,
	}
}

// Address returns the bare room address.
func (r *Room) Address() jid.JID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.address
}

// SetAddress replaces the room address and invalidates the cached
// occupant address.
func (r *Room) SetAddress(address jid.JID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.address = address.Bare()
	r.occupantJID = jid.JID{}
}

// Nickname is fixed for the lifetime of the room instance.
func (r *Room) Nickname() string { return r.nickname }

func (r *Room) Password() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.password
}

func (r *Room) SetPassword(password string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.password = password
}

// LastMessage returns the most recent message timestamp seen, and whether
// one has been recorded at all.
func (r *Room) LastMessage() (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastMessage, !r.lastMessage.IsZero()
}

// RecordMessage advances the last-message timestamp. Older or equal
// timestamps are ignored, so the stored value is monotonic non-decreasing.
func (r *Room) RecordMessage(t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastMessage.IsZero() || t.After(r.lastMessage) {
		r.lastMessage = t
	}
}

func (r *Room) State() JoinState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// SetState records the lifecycle state as reported by the caller, without
// validating the transition against the previous state.
func (r *Room) SetState(s JoinState) {
	r.mu.Lock()
	prev := r.state
	r.state = s
	address := r.address
	r.mu.Unlock()
	log.Debug().Str("module", "core.room").Str("room", address.String()).
		Str("from", string(prev)).Str("to", string(s)).Msg("state changed")
}

// SetTransport attaches a live transport to a previously detached room.
func (r *Room) SetTransport(tr Transport) {
	if tr == nil {
		tr = NopTransport{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transport = tr
}

// OccupantJID returns the room address qualified with the occupant's
// nickname. The cache is only ever filled while holding the write lock,
// so a concurrent SetAddress cannot leave a stale full address behind.
func (r *Room) OccupantJID() jid.JID {
	r.mu.RLock()
	cached := r.occupantJID
	r.mu.RUnlock()
	if cached.String() != "" {
		return cached
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.occupantJIDLocked()
}

// occupantJIDLocked is OccupantJID for callers already holding the write lock.
func (r *Room) occupantJIDLocked() jid.JID {
	if r.occupantJID.String() == "" {
		r.occupantJID = qualify(r.address, r.nickname)
	}
	return r.occupantJID
}

func (r *Room) currentTransport() Transport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transport
}

func qualify(address jid.JID, nickname string) jid.JID {
	full, err := address.WithResource(nickname)
	if err != nil {
		log.Error().Err(err).Str("module", "core.room").
			Str("room", address.String()).Str("nickname", nickname).
			Msg("cannot qualify room address")
		return address
	}
	return full
}
