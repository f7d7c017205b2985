// Package conn maintains the websocket connection to a chat room. All
// network I/O happens on internal goroutines; the UI consumes a typed
// event channel and never touches the socket directly.
package conn

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/parleyhq/parley/internal/errors"
	"github.com/parleyhq/parley/internal/logger"
)

const (
	handshakeTimeout = 5 * time.Second
	pingInterval     = 30 * time.Second
	readTimeout      = 60 * time.Second
	minBackoff       = 1 * time.Second
	maxBackoff       = 30 * time.Second
	eventBufferSize  = 64
)

// frame is the wire format. The server sends types "message", "join",
// "leave" and "ready"; the client only ever sends "message" and "ping".
type frame struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Text string `json:"text,omitempty"`
	TS   int64  `json:"ts,omitempty"`
}

// Client is a websocket connection to one room. It reconnects with
// capped exponential backoff until Close is called.
type Client struct {
	wsURL string
	name  string

	mu     sync.RWMutex
	conn   *websocket.Conn
	events chan Event
	done   chan struct{}

	// writeMu serializes frame writes; gorilla/websocket allows at most
	// one concurrent writer per connection.
	writeMu sync.Mutex

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Dial connects to room on server and starts the read, ping and
// reconnect goroutines. server is the HTTP base URL; the websocket
// scheme is derived from it.
func Dial(server, room, name string) (*Client, error) {
	wsURL, err := roomURL(server, room, name)
	if err != nil {
		return nil, err
	}

	c := &Client{
		wsURL:  wsURL,
		name:   name,
		events: make(chan Event, eventBufferSize),
		done:   make(chan struct{}),
	}

	conn, err := dial(wsURL)
	if err != nil {
		return nil, errors.DialFailed(wsURL, err)
	}
	c.conn = conn

	c.emit(Event{Type: Connected})
	c.wg.Add(2)
	go c.readLoop(conn)
	go c.pingLoop()

	logger.Info("conn: connected to %s", wsURL)
	return c, nil
}

// roomURL derives the websocket endpoint from the HTTP server URL.
func roomURL(server, room, name string) (string, error) {
	u, err := url.Parse(server)
	if err != nil {
		return "", errors.E(errors.Op("conn.Dial"), errors.KindInvalid, fmt.Sprintf("bad server URL %q", server), err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss", "":
		u.Scheme = "wss"
	default:
		return "", errors.E(errors.Op("conn.Dial"), errors.KindInvalid, fmt.Sprintf("unsupported scheme %q", u.Scheme))
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/rooms/" + url.PathEscape(room) + "/ws"
	u.RawQuery = url.Values{"name": {name}}.Encode()
	return u.String(), nil
}

func dial(wsURL string) (*websocket.Conn, error) {
	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = handshakeTimeout
	conn, _, err := dialer.Dial(wsURL, nil)
	return conn, err
}

// Events returns the channel the client delivers events on. It is
// closed after Close once the goroutines have drained.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Send writes a chat message frame. Safe for concurrent use.
func (c *Client) Send(text string) error {
	return c.writeFrame(frame{Type: "message", Name: c.name, Text: text, TS: time.Now().Unix()})
}

// writeFrame writes one frame under the write lock, so Send callers and
// the ping loop never write concurrently.
func (c *Client) writeFrame(f frame) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return errors.NotConnected()
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteJSON(f); err != nil {
		return errors.SendFailed(err)
	}
	return nil
}

// Close shuts the connection down and stops reconnecting. Idempotent.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.dropConn()
		go func() {
			c.wg.Wait()
			close(c.events)
		}()
		logger.Info("conn: closed")
	})
}

func (c *Client) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// emit delivers an event unless the client is shutting down. The
// channel is buffered; if the UI falls this far behind, the event is
// dropped rather than blocking the read loop.
func (c *Client) emit(ev Event) {
	select {
	case <-c.done:
	case c.events <- ev:
	default:
		logger.Warn("conn: event buffer full, dropping %s", ev.Type)
	}
}

// readLoop decodes frames from one connection until it fails, then
// hands off to the reconnect loop.
func (c *Client) readLoop(conn *websocket.Conn) {
	defer c.wg.Done()

	for {
		if c.closed() {
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			if c.closed() {
				return
			}
			logger.Warn("conn: read failed: %v", err)
			c.emit(Event{Type: Disconnected, Text: err.Error()})
			c.dropConn()
			c.wg.Add(1)
			go c.reconnectLoop()
			return
		}
		c.dispatch(f)
	}
}

// dispatch maps a wire frame to a UI event. Unknown or malformed
// frames are dropped silently per protocol.
func (c *Client) dispatch(f frame) {
	switch f.Type {
	case "message":
		if f.Name == "" || f.Text == "" {
			return
		}
		c.emit(Event{Type: Message, Name: f.Name, Text: f.Text})
	case "join":
		if f.Name == "" {
			return
		}
		c.emit(Event{Type: UserJoined, Name: f.Name})
	case "leave":
		if f.Name == "" {
			return
		}
		c.emit(Event{Type: UserLeft, Name: f.Name})
	case "ready":
		c.emit(Event{Type: RoomReady})
	case "pong":
		// keepalive response, ignore
	default:
		logger.Debug("conn: ignoring frame type %q", f.Type)
	}
}

// pingLoop keeps the connection alive. Write failures are left for the
// read loop to notice via its deadline.
func (c *Client) pingLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if err := c.writeFrame(frame{Type: "ping"}); err != nil {
				logger.Debug("conn: ping failed: %v", err)
			}
		}
	}
}

// reconnectLoop redials with capped exponential backoff until it
// succeeds or the client is closed.
func (c *Client) reconnectLoop() {
	defer c.wg.Done()

	backoff := minBackoff
	for {
		select {
		case <-c.done:
			return
		case <-time.After(backoff):
		}

		logger.Info("conn: reconnecting to %s", c.wsURL)
		conn, err := dial(c.wsURL)
		if err != nil {
			logger.Warn("conn: reconnect failed: %v", err)
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}

		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()

		c.emit(Event{Type: Connected})
		c.wg.Add(1)
		go c.readLoop(conn)
		return
	}
}

func (c *Client) dropConn() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
