package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBuffer     = 256
)

// Client is one live socket. Its events are processed in arrival order by
// a single read pump; outbound frames go through a buffered send channel
// drained by a single write pump.
type Client struct {
	ID       string
	identity Identity
	conn     *websocket.Conn
	send     chan []byte
	log      zerolog.Logger
}

func newClient(id string, identity Identity, conn *websocket.Conn, log zerolog.Logger) *Client {
	return &Client{
		ID:       id,
		identity: identity,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		log:      log.With().Str("conn_id", id).Uint("user_id", identity.UserID).Logger(),
	}
}

// Push queues an event for delivery. A full buffer drops the frame rather
// than blocking fan-out on one slow consumer; the durable side (history
// fetch, notification rows) covers anything missed.
func (c *Client) Push(evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		c.log.Error().Err(err).Str("event", string(evt.Kind)).Msg("encode frame failed")
		return
	}
	select {
	case c.send <- data:
	default:
		c.log.Warn().Str("event", string(evt.Kind)).Msg("send buffer full, frame dropped")
	}
}

func (c *Client) readPump(handle func(*Client, []byte), done func(*Client)) {
	defer func() {
		done(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn().Err(err).Msg("read error")
			}
			return
		}
		handle(c, data)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
