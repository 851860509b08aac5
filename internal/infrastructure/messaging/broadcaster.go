// Package messaging provides the concrete implementation of the SSE broadcaster.
package messaging

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
)

const clientBuffer = 10

// SSEBroadcaster fans content version changes out to connected page viewers.
type SSEBroadcaster struct {
	clients map[chan string]struct{}
	mu      sync.Mutex
	logger  *logging.ChanneledLogger
}

// NewSSEBroadcaster creates an empty broadcaster.
func NewSSEBroadcaster(logger *logging.ChanneledLogger) *SSEBroadcaster {
	return &SSEBroadcaster{
		clients: make(map[chan string]struct{}),
		logger:  logger,
	}
}

// AddClient registers a new SSE client and returns its message channel.
func (b *SSEBroadcaster) AddClient() chan string {
	ch := make(chan string, clientBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[ch] = struct{}{}

	b.logger.Content().Debug("SSE client registered", "clients", len(b.clients))
	return ch
}

// RemoveClient unregisters ch and closes it. Removing twice is a no-op.
func (b *SSEBroadcaster) RemoveClient(ch chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.clients[ch]; !exists {
		return
	}
	delete(b.clients, ch)
	close(ch)
	b.logger.Content().Debug("SSE client unregistered", "clients", len(b.clients))
}

// ConnectionCount returns the number of connected clients.
func (b *SSEBroadcaster) ConnectionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

type contentUpdated struct {
	Version   uint64 `json:"version"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

// BroadcastContentUpdated tells every client that a new document version is
// live. Slow clients drop the message rather than block the publisher.
func (b *SSEBroadcaster) BroadcastContentUpdated(version uint64, source string) {
	payload, _ := json.Marshal(contentUpdated{
		Version:   version,
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	message := fmt.Sprintf("event: content_updated\ndata: %s\n\n", payload)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.logger.Content().Debug("Broadcasting content update", "message", strings.ReplaceAll(message, "\n", "\\n"), "clients", len(b.clients))
	for ch := range b.clients {
		select {
		case ch <- message:
		default:
			b.logger.Content().Warn("SSE channel full, message dropped", "version", version)
		}
	}
}

var _ Broadcaster = (*SSEBroadcaster)(nil)
