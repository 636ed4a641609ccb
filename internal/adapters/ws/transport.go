// Package ws carries rendered stanzas over a websocket connection.
package ws

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Parley/internal/stanza"
)

var ErrBackpressure = errors.New("backpressure")

const writeTimeout = 5 * time.Second

// Conn is a websocket stanza transport with a buffered outbound queue.
// Send never blocks the caller; a full queue drops the stanza.
type Conn struct {
	conn *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	closed bool
}

// Dial connects to url and starts the write pump. The pump stops when ctx
// is cancelled or the connection breaks.
func Dial(ctx context.Context, url string) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	c := &Conn{
		conn: ws,
		send: make(chan []byte, 32),
	}
	go c.writePump(ctx)
	log.Info().Str("module", "adapters.ws").Str("url", url).Msg("transport connected")
	return c, nil
}

// Send implements core.Transport. Render failures and backpressure are
// logged and dropped; delivery is best effort.
func (c *Conn) Send(st stanza.Stanza) {
	data, err := st.Render()
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.ws").Str("id", st.ID()).Msg("render stanza")
		return
	}
	if err := c.trySend(data); err != nil {
		log.Warn().Err(err).Str("module", "adapters.ws").Str("id", st.ID()).Msg("stanza dropped")
	}
}

func (c *Conn) trySend(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- data:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *Conn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

func (c *Conn) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "adapters.ws").Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "adapters.ws").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				log.Error().Err(err).Str("module", "adapters.ws").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "adapters.ws").Msg("writePump write error")
				return
			}
		}
	}
}
