package core

import "github.com/dkeye/Parley/internal/stanza"

// Transport delivers outbound stanzas to the network.
// Send is fire-and-forget: delivery, retry and failure reporting are the
// adapter's concern. Owned by the adapter; the core never closes it.
type Transport interface {
	Send(st stanza.Stanza)
}

// NopTransport is the explicit detached state for a room with no live
// connection yet. Outbound stanzas are dropped rather than carried by a
// nil writer.
type NopTransport struct{}

func (NopTransport) Send(stanza.Stanza) {}
