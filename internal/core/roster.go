package core

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Parley/internal/domain"
)

// AddOccupant upserts into the confirmed roster, keyed by nickname.
func (r *Room) AddOccupant(o *domain.Occupant) {
	r.mu.Lock()
	r.roster[o.Nickname] = o
	address := r.address
	r.mu.Unlock()
	log.Debug().Str("module", "core.room").Str("room", address.String()).
		Str("nickname", o.Nickname).Msg("occupant added")
}

// RemoveOccupant deletes the confirmed roster entry for o's nickname.
// Removing an absent occupant is a no-op.
func (r *Room) RemoveOccupant(o *domain.Occupant) {
	r.mu.Lock()
	delete(r.roster, o.Nickname)
	address := r.address
	r.mu.Unlock()
	log.Debug().Str("module", "core.room").Str("room", address.String()).
		Str("nickname", o.Nickname).Msg("occupant removed")
}

// AddPending upserts a provisional occupant awaiting promotion or discard.
// Pending entries are independent of the confirmed roster; a nickname may
// legitimately appear in both.
func (r *Room) AddPending(nickname string, o *domain.Occupant) {
	r.mu.Lock()
	r.pending[nickname] = o
	r.mu.Unlock()
}

// RemovePending deletes and returns the provisional entry for nickname.
// This is the one registry operation whose result the caller must observe
// synchronously: it hands the occupant off atomically, after every write
// ahead of it in the lock order has completed.
func (r *Room) RemovePending(nickname string) (*domain.Occupant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.pending[nickname]
	if ok {
		delete(r.pending, nickname)
	}
	return o, ok
}

// Roster returns a point-in-time copy of the confirmed roster. Iterating
// it never races with later mutations.
func (r *Room) Roster() map[string]*domain.Occupant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*domain.Occupant, len(r.roster))
	for nick, o := range r.roster {
		out[nick] = o
	}
	return out
}

// PendingRoster returns a point-in-time copy of the provisional roster.
func (r *Room) PendingRoster() map[string]*domain.Occupant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*domain.Occupant, len(r.pending))
	for nick, o := range r.pending {
		out[nick] = o
	}
	return out
}

func (r *Room) OccupantCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.roster)
}
