// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"

	"mellium.im/xmpp/jid"
)

const MaxNicknameLen = 64

var (
	ErrNicknameEmpty   = errors.New("nickname empty")
	ErrNicknameTooLong = errors.New("nickname too long")
)

// Affiliation is the long-lived association between a user and a room.
type Affiliation string

const (
	AffiliationNone    Affiliation = "none"
	AffiliationMember  Affiliation = "member"
	AffiliationAdmin   Affiliation = "admin"
	AffiliationOwner   Affiliation = "owner"
	AffiliationOutcast Affiliation = "outcast"
)

// Role is the occupant's standing for the duration of the current visit.
type Role string

const (
	RoleNone        Role = "none"
	RoleVisitor     Role = "visitor"
	RoleParticipant Role = "participant"
	RoleModerator   Role = "moderator"
)

// Occupant represents one participant's membership record in a room,
// keyed by in-room nickname. The room core stores it without inspecting it.
type Occupant struct {
	Nickname    string
	RealJID     jid.JID
	Affiliation Affiliation
	Role        Role
}

// NewOccupant avoids raw literals in adapters and keeps construction obvious.
func NewOccupant(nickname string) (*Occupant, error) {
	if len(nickname) == 0 {
		return nil, ErrNicknameEmpty
	}
	if len(nickname) > MaxNicknameLen {
		return nil, ErrNicknameTooLong
	}
	return &Occupant{
		Nickname:    nickname,
		Affiliation: AffiliationNone,
		Role:        RoleParticipant,
	}, nil
}
