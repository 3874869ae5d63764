package socket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const writeWait = 5 * time.Second

// subscriber serializes writes to one connection.
type subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *subscriber) write(msg []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub fans out live messages to websocket subscribers grouped by channel.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*websocket.Conn]*subscriber
	log     zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*websocket.Conn]*subscriber),
		log:     log,
	}
}

func (h *Hub) Register(channel string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[channel] == nil {
		h.clients[channel] = make(map[*websocket.Conn]*subscriber)
	}
	h.clients[channel][conn] = &subscriber{conn: conn}
	h.log.Debug().Str("channel", channel).Str("remote", conn.RemoteAddr().String()).Msg("websocket client registered")
}

func (h *Hub) Unregister(channel string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[channel][conn]; ok {
		delete(h.clients[channel], conn)
		h.log.Debug().Str("channel", channel).Msg("websocket client unregistered")
	}
}

func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[channel])
}

// Publish sends payload as JSON to every subscriber of channel. The hub lock
// is held only to snapshot the subscribers; connections that fail the write
// are dropped.
func (h *Hub) Publish(channel string, payload interface{}) {
	msg, err := json.Marshal(envelope{Channel: channel, Data: payload})
	if err != nil {
		h.log.Error().Err(err).Str("channel", channel).Msg("marshal live message")
		return
	}

	for _, sub := range h.snapshot(channel) {
		if err := sub.write(msg); err != nil {
			h.log.Warn().Err(err).Str("channel", channel).Msg("dropping websocket client")
			h.Unregister(channel, sub.conn)
			_ = sub.conn.Close()
		}
	}
}

func (h *Hub) snapshot(channel string) []*subscriber {
	h.mu.RLock()
	defer h.mu.RUnlock()
	subs := make([]*subscriber, 0, len(h.clients[channel]))
	for _, sub := range h.clients[channel] {
		subs = append(subs, sub)
	}
	return subs
}

type envelope struct {
	Channel string      `json:"channel"`
	Data    interface{} `json:"data"`
}
