package websocket

import (
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Connection timing. Pings go out well inside the pong deadline so an idle
// dashboard tab stays connected.
const (
	writeTimeout   = 10 * time.Second
	pongTimeout    = 60 * time.Second
	pingInterval   = 54 * time.Second
	inboundLimit   = 512
	sendBufferSize = 256
)

// Client is one listen-only dashboard connection. The server pushes events;
// anything the browser sends apart from control frames is discarded.
type Client struct {
	id     string
	userID string
	conn   *websocket.Conn
	hub    *Hub

	outbox    chan []byte
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewClient wraps an upgraded connection for the given user
func NewClient(conn *websocket.Conn, userID string, hub *Hub) *Client {
	return &Client{
		id:     uuid.New().String(),
		userID: userID,
		conn:   conn,
		hub:    hub,
		outbox: make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

func (c *Client) ID() string     { return c.id }
func (c *Client) UserID() string { return c.userID }

// Send queues an event without blocking. It returns ErrClientClosed after
// Close and ErrClientSlow when the outbox is full.
func (c *Client) Send(data []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.outbox <- data:
		return nil
	case <-c.done:
		return ErrClientClosed
	default:
		return ErrClientSlow
	}
}

// Close stops the writer, says goodbye to the peer and closes the
// connection. Safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeTimeout))
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

// Run serves the connection until the peer goes away or the client is
// closed, then removes it from the hub. It blocks; call it in a goroutine.
func (c *Client) Run() {
	go c.writeLoop()

	defer func() {
		c.hub.Unregister(c)
		_ = c.Close()
	}()
	c.drainInbound()
}

// drainInbound keeps reading so that pongs and close frames are processed
func (c *Client) drainInbound() {
	c.conn.SetReadLimit(inboundLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		_, r, err := c.conn.NextReader()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().
					Err(err).
					Str("user_id", c.userID).
					Str("client_id", c.id).
					Msg("WebSocket connection dropped")
			}
			return
		}
		if _, err := io.Copy(io.Discard, r); err != nil {
			return
		}
	}
}

func (c *Client) writeLoop() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-c.done:
			return

		case data := <-c.outbox:
			if err := c.write(websocket.TextMessage, data); err != nil {
				log.Warn().
					Err(err).
					Str("user_id", c.userID).
					Str("client_id", c.id).
					Msg("WebSocket write failed")
				_ = c.Close()
				return
			}

		case <-ping.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(messageType, data)
}
