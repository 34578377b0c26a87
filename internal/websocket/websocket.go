package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/services"
)

// MatchUpdate is the message type pushed after every match change
const MatchUpdate = "match_update"

const (
	sendBuffer      = 256
	broadcastBuffer = 64
	pongWait        = 60 * time.Second
	pingPeriod      = 54 * time.Second
	writeWait       = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // scoreboards are embedded on other sites
	},
}

// Snapshotter provides the current live score sent to a client on connect
type Snapshotter interface {
	LiveScore(ctx context.Context, matchID int) (*services.LiveScore, error)
}

// envelope is a message addressed to the viewers of one match
type envelope struct {
	matchID int
	msg     models.WSMessage
}

// Hub maintains the set of active clients and broadcasts messages to the clients
type Hub struct {
	log        logger.Logger
	clients    map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	snapshots  Snapshotter
}

// Client is a middleman between the websocket connection and the hub.
// A zero matchID follows every match.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan models.WSMessage
	matchID int
}

// New creates a new Hub instance with injected dependencies
func New(log logger.Logger, snapshots Snapshotter) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan envelope, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		snapshots:  snapshots,
	}
}

// Start begins the hub's main loop in a goroutine. The loop exits when ctx is done.
func (h *Hub) Start(ctx context.Context) {
	go h.run(ctx)
}

// run handles client registration/unregistration and message broadcasting
func (h *Hub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mutex.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			h.log.Debug("Hub stopped")
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug("Client connected", "match_id", client.matchID, "total_clients", total)

			if client.matchID != 0 && h.snapshots != nil {
				go h.sendSnapshot(ctx, client)
			}

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug("Client disconnected", "total_clients", total)

		case env := <-h.broadcast:
			h.mutex.RLock()
			for client := range h.clients {
				if client.matchID != 0 && client.matchID != env.matchID {
					continue
				}
				select {
				case client.send <- env.msg:
				default:
					// Client's send channel is full, unregister
					go h.remove(client)
				}
			}
			h.mutex.RUnlock()
		}
	}
}

// sendSnapshot gives a new viewer the current score without waiting for the next point
func (h *Hub) sendSnapshot(ctx context.Context, client *Client) {
	live, err := h.snapshots.LiveScore(ctx, client.matchID)
	if err != nil {
		h.log.Debug("No snapshot for client", "match_id", client.matchID, "error", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if !h.clients[client] {
		return
	}
	select {
	case client.send <- models.WSMessage{Type: MatchUpdate, Payload: live}:
	default:
	}
}

// BroadcastMessage queues a message for the viewers of matchID. A full
// queue drops the message rather than block the caller.
func (h *Hub) BroadcastMessage(matchID int, msgType string, payload interface{}) {
	select {
	case h.broadcast <- envelope{matchID: matchID, msg: models.WSMessage{Type: msgType, Payload: payload}}:
	default:
		h.log.Warn("Broadcast queue full, dropping message", "match_id", matchID, "type", msgType)
	}
}

// BroadcastMatchUpdate implements services.Broadcaster
func (h *Hub) BroadcastMatchUpdate(matchID int, payload any) {
	h.BroadcastMessage(matchID, MatchUpdate, payload)
}

// remove unregisters a client unless the hub has stopped
func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("WebSocket error", "error", err)
			}
			break
		}

		// Viewers are read-only; incoming messages are only logged
		var msg models.WSMessage
		if err := json.Unmarshal(message, &msg); err == nil {
			c.hub.log.Debug("Received message", "type", msg.Type)
		}
	}
}

// writePump pumps messages from the hub to the websocket connection
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
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
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

// ServeWs handles websocket requests from clients. An optional match_id
// query parameter limits the stream to one match.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	var matchID int
	if raw := r.URL.Query().Get("match_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			http.Error(w, "invalid match_id", http.StatusBadRequest)
			return
		}
		matchID = id
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("WebSocket upgrade error", "error", err)
		return
	}

	client := &Client{
		hub:     h,
		conn:    conn,
		send:    make(chan models.WSMessage, sendBuffer),
		matchID: matchID,
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
