package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Parley/internal/domain"
)

func TestAddRemoveOccupant(t *testing.T) {
	r := testRoom(t)
	bob, err := domain.NewOccupant("bob")
	require.NoError(t, err)

	r.AddOccupant(bob)
	assert.Contains(t, r.Roster(), "bob")

	r.RemoveOccupant(bob)
	assert.NotContains(t, r.Roster(), "bob")
}

func TestAddOccupantUpserts(t *testing.T) {
	r := testRoom(t)
	r.AddOccupant(&domain.Occupant{Nickname: "bob", Role: domain.RoleParticipant})
	r.AddOccupant(&domain.Occupant{Nickname: "bob", Role: domain.RoleModerator})

	roster := r.Roster()
	require.Len(t, roster, 1)
	assert.Equal(t, domain.RoleModerator, roster["bob"].Role)
}

func TestRemoveAbsentOccupantIsNoOp(t *testing.T) {
	r := testRoom(t)
	r.RemoveOccupant(&domain.Occupant{Nickname: "ghost"})
	assert.Empty(t, r.Roster())
}

func TestPendingHandoff(t *testing.T) {
	r := testRoom(t)
	bob := &domain.Occupant{Nickname: "bob"}

	r.AddPending("bob", bob)
	got, ok := r.RemovePending("bob")
	require.True(t, ok)
	assert.Same(t, bob, got)
	assert.NotContains(t, r.PendingRoster(), "bob")
}

func TestRemovePendingAbsent(t *testing.T) {
	r := testRoom(t)
	got, ok := r.RemovePending("carol")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRosterAndPendingMayOverlap(t *testing.T) {
	r := testRoom(t)
	r.AddOccupant(&domain.Occupant{Nickname: "bob"})
	r.AddPending("bob", &domain.Occupant{Nickname: "bob"})

	assert.Contains(t, r.Roster(), "bob")
	assert.Contains(t, r.PendingRoster(), "bob")
}

func TestRosterSnapshotIsolated(t *testing.T) {
	r := testRoom(t)
	r.AddOccupant(&domain.Occupant{Nickname: "bob"})

	snapshot := r.Roster()
	r.AddOccupant(&domain.Occupant{Nickname: "carol"})
	assert.Len(t, snapshot, 1)

	delete(snapshot, "bob")
	assert.Contains(t, r.Roster(), "bob")
}
