package ws

import (
	"sync"

	"github.com/google/uuid"
)

const sendBufferSize = 256

// Conn is the registry-side handle of one live websocket: a buffered
// outbound queue drained by the session's write loop. The registry owns
// the handle for the lifetime of the socket; sessions only push and pull
// frames through it.
type Conn struct {
	userID    uuid.UUID
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewConn(userID uuid.UUID) *Conn {
	return &Conn{
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

func (c *Conn) UserID() uuid.UUID {
	return c.userID
}

// TrySend queues payload for delivery. It reports false when the session
// is shutting down or the outbound queue is full; it never blocks the
// caller.
func (c *Conn) TrySend(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- payload:
		return true
	case <-c.done:
		return false
	default:
		return false
	}
}

// Close signals the write loop to stop. Safe to call from any goroutine,
// any number of times.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
