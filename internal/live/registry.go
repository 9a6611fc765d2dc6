// Package live maintains the process-wide set of open real-time channels and
// delivers best-effort unicast messages to connected users.
package live

import "sync"

// Channel is the transport handle the registry holds for a connected user.
// *Session satisfies it in production; tests inject fakes.
type Channel interface {
	WriteJSON(v interface{}) error
	Close() error
}

// SendResult is the typed outcome of a unicast send.
type SendResult int

const (
	// Delivered means the message was written to the user's channel.
	Delivered SendResult = iota
	// NoSuchUser means no channel is registered for the user. Not an error:
	// messages to offline users are dropped, never queued.
	NoSuchUser
	// TransportFailed means the write failed. The channel is treated as dead
	// and has been removed from the registry.
	TransportFailed
)

func (r SendResult) String() string {
	switch r {
	case Delivered:
		return "delivered"
	case NoSuchUser:
		return "no_such_user"
	case TransportFailed:
		return "transport_failed"
	default:
		return "unknown"
	}
}

// Registry maps user IDs to their live channel. At most one channel is held
// per user: a new Connect for the same ID supersedes the prior handle. The
// registry owns no transport state beyond the reference needed to send.
//
// Registries are constructed per process (or per test) and injected into
// whatever needs them; there is no package-level instance.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]Channel
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{
		channels: make(map[string]Channel),
	}
}

// Connect registers ch as the live channel for userID, replacing any prior
// channel. The caller must have completed the transport handshake first: once
// Connect returns, concurrent senders observe the new channel.
func (r *Registry) Connect(userID string, ch Channel) {
	r.mu.Lock()
	r.channels[userID] = ch
	r.mu.Unlock()
}

// Disconnect removes the channel registered for userID. Removing an absent
// entry is a no-op.
func (r *Registry) Disconnect(userID string) {
	r.mu.Lock()
	delete(r.channels, userID)
	r.mu.Unlock()
}

// DisconnectChannel removes userID's registration only if ch is still the
// registered channel. Connection teardown paths use it so that a superseded
// channel's cleanup cannot evict its replacement.
func (r *Registry) DisconnectChannel(userID string, ch Channel) {
	r.mu.Lock()
	if r.channels[userID] == ch {
		delete(r.channels, userID)
	}
	r.mu.Unlock()
}

// Send writes v to userID's channel, best effort. A write failure is terminal
// for the channel: it is closed, removed from the registry, and
// TransportFailed is returned. Sends to unconnected users return NoSuchUser.
// There is no retry and no queueing.
func (r *Registry) Send(userID string, v interface{}) SendResult {
	r.mu.RLock()
	ch, ok := r.channels[userID]
	r.mu.RUnlock()
	if !ok {
		return NoSuchUser
	}

	if err := ch.WriteJSON(v); err != nil {
		ch.Close()
		r.DisconnectChannel(userID, ch)
		return TransportFailed
	}
	return Delivered
}

// Connected reports whether a channel is registered for userID.
func (r *Registry) Connected(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.channels[userID]
	return ok
}

// Count returns the number of registered channels.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels)
}
