package core

import (
	"github.com/rs/zerolog/log"
	"mellium.im/xmpp/jid"

	"github.com/dkeye/Parley/internal/stanza"
)

// Rejoin requests (or re-requests) membership: it moves the room to
// Requested and transmits a join presence carrying the MUC container,
// the password if one is set, and a history request since the last
// message seen. Safe to call from any state; rejoining after a
// disconnect is the expected use.
func (r *Room) Rejoin() *stanza.Presence {
	r.mu.Lock()
	r.state = Requested
	to := r.occupantJIDLocked()
	address := r.address
	password := r.password
	last := r.lastMessage
	tr := r.transport
	r.mu.Unlock()

	x := stanza.NewElementNS("x", stanza.NSMUC)
	if password != "" {
		x.AddChild(&stanza.Element{Name: "password", Text: password})
	}
	if !last.IsZero() {
		x.AddChild(stanza.HistorySince(last))
	}
	p := stanza.NewPresence(to).AddChild(x)

	log.Info().Str("module", "core.room").Str("room", address.String()).
		Str("nickname", r.nickname).Msg("join requested")
	tr.Send(p)
	return p
}

// CreateMessage builds a groupchat message addressed to the room's
// occupant-qualified address, without sending it.
func (r *Room) CreateMessage(body string) *stanza.Message {
	m := stanza.NewMessage(r.OccupantJID(), stanza.GroupChat)
	m.Body = body
	return m
}

// SendMessage builds a groupchat message, appends extra payload elements
// in the given order, and transmits it.
func (r *Room) SendMessage(body string, extra ...*stanza.Element) *stanza.Message {
	m := r.CreateMessage(body)
	for _, el := range extra {
		m.AddChild(el)
	}
	r.currentTransport().Send(m)
	return m
}

// CreateInvitation builds a mediated invitation: a message to the room
// whose muc#user container asks the service to invite invitee.
func (r *Room) CreateInvitation(invitee jid.JID, reason string) *stanza.Message {
	invite := stanza.NewElement("invite").SetAttr("to", invitee.String())
	if reason != "" {
		invite.AddChild(&stanza.Element{Name: "reason", Text: reason})
	}
	x := stanza.NewElementNS("x", stanza.NSMUCUser).AddChild(invite)
	return stanza.NewMessage(r.Address(), "").AddChild(x)
}

// Invite transmits a mediated invitation through the room service.
func (r *Room) Invite(invitee jid.JID, reason string) *stanza.Message {
	m := r.CreateInvitation(invitee, reason)
	log.Info().Str("module", "core.room").Str("room", r.Address().String()).
		Str("invitee", invitee.String()).Msg("invitation sent")
	r.currentTransport().Send(m)
	return m
}

// CreateDirectInvitation builds a direct invitation sent straight to the
// invitee, bypassing the room service. A thread id marks the invitation
// as the continuation of a one-to-one conversation.
func (r *Room) CreateDirectInvitation(invitee jid.JID, reason, thread string) *stanza.Message {
	r.mu.RLock()
	address := r.address
	password := r.password
	r.mu.RUnlock()

	x := stanza.NewElementNS("x", stanza.NSConference)
	x.SetAttr("jid", address.String())
	if password != "" {
		x.SetAttr("password", password)
	}
	if reason != "" {
		x.SetAttr("reason", reason)
	}
	if thread != "" {
		x.SetAttr("thread", thread)
		x.SetAttr("continue", "true")
	}
	return stanza.NewMessage(invitee, "").AddChild(x)
}

// InviteDirectly transmits a direct invitation to the invitee.
func (r *Room) InviteDirectly(invitee jid.JID, reason, thread string) *stanza.Message {
	m := r.CreateDirectInvitation(invitee, reason, thread)
	log.Info().Str("module", "core.room").Str("room", r.Address().String()).
		Str("invitee", invitee.String()).Msg("direct invitation sent")
	r.currentTransport().Send(m)
	return m
}
