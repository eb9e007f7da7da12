// Package websocket pushes store changes to connected dashboards.
package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"sociai/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 512
	sendBuffer     = 256
)

// Manager fans events out to every connected client. All client
// bookkeeping happens on the Run goroutine.
type Manager struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *zap.Logger
	upgrader   websocket.Upgrader
}

type Client struct {
	id      string
	conn    *websocket.Conn
	manager *Manager

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

// NewManager returns a hub that accepts connections from allowedOrigins.
// A "*" entry, or a request without an Origin header, is always accepted.
func NewManager(logger *zap.Logger, allowedOrigins []string) *Manager {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	return &Manager{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, sendBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins["*"] || origins[origin]
			},
		},
	}
}

// Run serves the hub until ctx is cancelled, then disconnects every client.
func (m *Manager) Run(ctx context.Context) error {
	defer close(m.done)

	for {
		select {
		case <-ctx.Done():
			m.mu.Lock()
			for client := range m.clients {
				client.close()
				delete(m.clients, client)
			}
			m.mu.Unlock()
			m.logger.Info("websocket hub stopped")
			return nil

		case client := <-m.register:
			m.mu.Lock()
			m.clients[client] = true
			total := len(m.clients)
			m.mu.Unlock()
			m.logger.Debug("websocket client registered", zap.String("client", client.id), zap.Int("clients", total))

		case client := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[client]; ok {
				delete(m.clients, client)
				client.close()
			}
			total := len(m.clients)
			m.mu.Unlock()
			m.logger.Debug("websocket client unregistered", zap.String("client", client.id), zap.Int("clients", total))

		case message := <-m.broadcast:
			m.mu.Lock()
			for client := range m.clients {
				if !client.enqueue(message) {
					client.close()
					delete(m.clients, client)
				}
			}
			m.mu.Unlock()
		}
	}
}

// Publish queues an event for every client. It never blocks; events are
// dropped when the hub is stopped or backed up.
func (m *Manager) Publish(eventType string, payload interface{}) {
	msg, err := json.Marshal(models.Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		m.logger.Error("marshal websocket event", zap.String("type", eventType), zap.Error(err))
		return
	}

	select {
	case <-m.done:
	case m.broadcast <- msg:
	default:
		m.logger.Warn("websocket broadcast buffer full, dropping event", zap.String("type", eventType))
	}
}

func (m *Manager) ConnectedClients() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// ServeHTTP upgrades the request and attaches the connection to the hub.
func (m *Manager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		id:      uuid.NewString(),
		conn:    conn,
		manager: m,
		send:    make(chan []byte, sendBuffer),
	}

	select {
	case m.register <- client:
	case <-m.done:
		conn.Close()
		return
	}

	client.reply(models.EventConnected, map[string]interface{}{
		"clientId": client.id,
		"message":  "WebSocket connected successfully",
	})

	go client.writePump()
	go client.readPump()
}

// enqueue hands msg to the write pump without blocking. It returns false
// when the client is closed or too slow to keep up.
func (c *Client) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) reply(eventType string, payload interface{}) {
	msg, err := json.Marshal(models.Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		c.manager.logger.Error("marshal websocket reply", zap.String("type", eventType), zap.Error(err))
		return
	}
	c.enqueue(msg)
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.manager.unregister <- c:
		case <-c.manager.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.manager.logger.Warn("websocket read error", zap.String("client", c.id), zap.Error(err))
			}
			return
		}

		var data struct {
			Type    string `json:"type"`
			Channel string `json:"channel"`
		}
		if err := json.Unmarshal(message, &data); err != nil {
			c.manager.logger.Debug("websocket message unmarshal error", zap.String("client", c.id), zap.Error(err))
			continue
		}

		switch data.Type {
		case "ping":
			c.reply("pong", map[string]interface{}{"clientId": c.id})
		case "subscribe":
			// Channels are not filtered; every client gets every event.
			c.reply("subscribed", map[string]interface{}{"channel": data.Channel, "clientId": c.id})
		}
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
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
