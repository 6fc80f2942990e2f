package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// AdminChannel receives every storefront event.
	AdminChannel = "admin"

	clusterChannel = "techmart_live_feed"
)

// SessionChannel is the feed of one shopper session.
func SessionChannel(sessionId string) string {
	return "session:" + sessionId
}

// Hub fans messages out to websocket clients grouped by channel. With Redis
// configured, messages are relayed to the hubs of other instances as well.
type Hub struct {
	instanceId string

	clients map[string][]*Client
	total   int

	register   chan *Client
	unregister chan *Client

	// done is closed once Run returns.
	done     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex

	rdb    *redis.Client
	logger logger.ILogger
}

type clusterMessage struct {
	Origin  string          `json:"origin"`
	Channel string          `json:"channel"`
	Message json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		instanceId: uuid.NewString(),
		clients:    make(map[string][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rdb:        rdb,
		logger:     log,
	}
}

// Run processes registrations until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	defer h.stopOnce.Do(func() { close(h.done) })

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Channel] = append(h.clients[client.Channel], client)
			h.total++
			metrics.SetLiveFeedClients(h.total)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"channel": client.Channel})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// attach hands client to Run. It reports false once the hub has stopped.
func (h *Hub) attach(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) detach(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.Channel]
	for i, c := range clients {
		if c == client {
			h.clients[client.Channel] = append(clients[:i:i], clients[i+1:]...)
			close(client.Send)
			h.total--
			metrics.SetLiveFeedClients(h.total)
			break
		}
	}
	if len(h.clients[client.Channel]) == 0 {
		delete(h.clients, client.Channel)
	}
}

// ClientCount reports connected clients on a channel.
func (h *Hub) ClientCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[channel])
}

// Publish delivers message to local clients on channel and relays it to other instances.
func (h *Hub) Publish(ctx context.Context, channel string, message []byte) {
	h.deliver(channel, message)

	if h.rdb == nil {
		return
	}
	payload, err := json.Marshal(clusterMessage{Origin: h.instanceId, Channel: channel, Message: message})
	if err != nil {
		return
	}
	if err := h.rdb.Publish(ctx, clusterChannel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Failed to relay message to cluster", map[string]interface{}{"error": err.Error()})
	}
}

// deliver never blocks: a client whose buffer is full is dropped. Sends
// happen under the read lock so remove cannot close a channel mid-send.
func (h *Hub) deliver(channel string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[channel] {
		select {
		case client.Send <- message:
		default:
			h.logger.Warn("Hub", "Client buffer full, dropping client", map[string]interface{}{"channel": channel})
			go h.detach(client)
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterMessage
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Malformed cluster message", map[string]interface{}{"error": err.Error()})
			continue
		}
		if payload.Origin == h.instanceId {
			continue
		}
		h.deliver(payload.Channel, payload.Message)
	}
}
