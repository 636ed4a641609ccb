// Package stanza models outbound XMPP stanzas as detached element trees,
// ready to be rendered and handed to whatever transport carries them.
package stanza

import (
	"time"

	"github.com/google/uuid"
	"mellium.im/xmpp/jid"
)

// MUC namespaces, per XEP-0045 and XEP-0249.
const (
	NSMUC        = "http://jabber.org/protocol/muc"
	NSMUCUser    = "http://jabber.org/protocol/muc#user"
	NSConference = "jabber:x:conference"
)

// GroupChat is the message type used for room-wide chat messages.
const GroupChat = "groupchat"

// Stanza is one discrete outbound protocol unit.
type Stanza interface {
	ID() string
	Render() ([]byte, error)
}

// Presence is an outbound presence stanza.
type Presence struct {
	StanzaID string
	To       jid.JID
	Type     string
	Children []*Element
}

func NewPresence(to jid.JID) *Presence {
	return &Presence{StanzaID: uuid.NewString(), To: to}
}

func (p *Presence) ID() string { return p.StanzaID }

func (p *Presence) AddChild(c *Element) *Presence {
	p.Children = append(p.Children, c)
	return p
}

// Child returns the first payload child with the given name, or nil.
func (p *Presence) Child(name string) *Element {
	for _, c := range p.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (p *Presence) Render() ([]byte, error) {
	el := &Element{Name: "presence"}
	el.SetAttr("id", p.StanzaID)
	if s := p.To.String(); s != "" {
		el.SetAttr("to", s)
	}
	if p.Type != "" {
		el.SetAttr("type", p.Type)
	}
	el.Children = p.Children
	return el.render()
}

// Message is an outbound message stanza.
type Message struct {
	StanzaID string
	To       jid.JID
	Type     string
	Body     string
	Children []*Element
}

func NewMessage(to jid.JID, typ string) *Message {
	return &Message{StanzaID: uuid.NewString(), To: to, Type: typ}
}

func (m *Message) ID() string { return m.StanzaID }

func (m *Message) AddChild(c *Element) *Message {
	m.Children = append(m.Children, c)
	return m
}

func (m *Message) Child(name string) *Element {
	for _, c := range m.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (m *Message) Render() ([]byte, error) {
	el := &Element{Name: "message"}
	el.SetAttr("id", m.StanzaID)
	if s := m.To.String(); s != "" {
		el.SetAttr("to", s)
	}
	if m.Type != "" {
		el.SetAttr("type", m.Type)
	}
	if m.Body != "" {
		el.AddChild(&Element{Name: "body", Text: m.Body})
	}
	el.Children = append(el.Children, m.Children...)
	return el.render()
}

// HistorySince builds the history request child of a join presence.
// The timestamp is always rendered in UTC at second precision with the
// canonical "Z" offset, independent of host locale or zone.
func HistorySince(t time.Time) *Element {
	h := NewElement("history")
	h.SetAttr("since", t.UTC().Truncate(time.Second).Format(time.RFC3339))
	return h
}
