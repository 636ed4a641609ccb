package stanza

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mellium.im/xmpp/jid"
)

func TestElementRender(t *testing.T) {
	x := NewElementNS("x", NSMUC)
	x.AddChild(&Element{Name: "password", Text: "secret"})

	data, err := x.render()
	require.NoError(t, err)
	assert.Equal(t, `<x xmlns="http://jabber.org/protocol/muc"><password>secret</password></x>`, string(data))
}

func TestElementSetAttrOverwrites(t *testing.T) {
	e := NewElement("history")
	e.SetAttr("since", "a")
	e.SetAttr("since", "b")
	assert.Equal(t, "b", e.Attr("since"))
	assert.Len(t, e.Attrs, 1)
}

func TestElementChildLookup(t *testing.T) {
	e := NewElement("x")
	e.AddChild(NewElement("invite"))
	assert.NotNil(t, e.Child("invite"))
	assert.Nil(t, e.Child("decline"))
}

func TestElementTextEscaped(t *testing.T) {
	e := &Element{Name: "body", Text: "a < b & c"}
	data, err := e.render()
	require.NoError(t, err)
	assert.Equal(t, "<body>a &lt; b &amp; c</body>", string(data))
}

func TestPresenceRender(t *testing.T) {
	p := NewPresence(jid.MustParse("room@conf.example.org/alice"))
	p.AddChild(NewElementNS("x", NSMUC))

	data, err := p.Render()
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `to="room@conf.example.org/alice"`)
	assert.Contains(t, s, `id="`+p.StanzaID+`"`)
	assert.Contains(t, s, `<x xmlns="http://jabber.org/protocol/muc">`)
}

func TestMessageRenderBody(t *testing.T) {
	m := NewMessage(jid.MustParse("room@conf.example.org/alice"), GroupChat)
	m.Body = "hello"

	data, err := m.Render()
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `type="groupchat"`)
	assert.Contains(t, s, "<body>hello</body>")
}

func TestMessageRenderNoBody(t *testing.T) {
	m := NewMessage(jid.MustParse("room@conf.example.org"), "")
	data, err := m.Render()
	require.NoError(t, err)
	s := string(data)
	assert.NotContains(t, s, "<body>")
	assert.NotContains(t, s, "type=")
}

func TestStanzaIDsUnique(t *testing.T) {
	to := jid.MustParse("room@conf.example.org")
	assert.NotEqual(t, NewMessage(to, "").ID(), NewMessage(to, "").ID())
}

func TestHistorySinceUTC(t *testing.T) {
	// 01:30 at +01:30 is midnight UTC.
	zone := time.FixedZone("ahead", 90*60)
	h := HistorySince(time.Date(2024, 1, 1, 1, 30, 0, 0, zone))
	assert.Equal(t, "2024-01-01T00:00:00Z", h.Attr("since"))
}

func TestHistorySinceSecondPrecision(t *testing.T) {
	h := HistorySince(time.Date(2024, 6, 15, 12, 0, 1, 999_000_000, time.UTC))
	assert.Equal(t, "2024-06-15T12:00:01Z", h.Attr("since"))
}
