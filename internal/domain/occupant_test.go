package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOccupant(t *testing.T) {
	o, err := NewOccupant("bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", o.Nickname)
	assert.Equal(t, AffiliationNone, o.Affiliation)
	assert.Equal(t, RoleParticipant, o.Role)
}

func TestNewOccupantEmptyNickname(t *testing.T) {
	_, err := NewOccupant("")
	assert.ErrorIs(t, err, ErrNicknameEmpty)
}

func TestNewOccupantNicknameTooLong(t *testing.T) {
	_, err := NewOccupant(strings.Repeat("x", MaxNicknameLen+1))
	assert.ErrorIs(t, err, ErrNicknameTooLong)
}
