package ws

import (
	"sync"

	"github.com/google/uuid"
)

// NotificationRegistry maps a user to their single live notification
// socket. Registering a second socket for the same user silently replaces
// the first: the last login owns delivery.
type NotificationRegistry struct {
	mu    sync.Mutex
	conns map[uuid.UUID]*Conn
}

func NewNotificationRegistry() *NotificationRegistry {
	return &NotificationRegistry{
		conns: make(map[uuid.UUID]*Conn),
	}
}

func (r *NotificationRegistry) Register(userID uuid.UUID, conn *Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[userID] = conn
}

func (r *NotificationRegistry) Deregister(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, userID)
}

// Send attempts delivery to the user's notification socket. The conn
// handle is taken under the lock, the write happens outside it.
func (r *NotificationRegistry) Send(userID uuid.UUID, payload []byte) bool {
	r.mu.Lock()
	conn, ok := r.conns[userID]
	r.mu.Unlock()

	if !ok {
		return false
	}
	return conn.TrySend(payload)
}

type roomEntry struct {
	userID uuid.UUID
	conn   *Conn
}

// ChatRegistry maps a chat room to the ordered list of live sockets of
// its members. A user may hold several entries in the same room (multiple
// tabs) and entries across many rooms.
type ChatRegistry struct {
	mu    sync.Mutex
	rooms map[uuid.UUID][]roomEntry
}

func NewChatRegistry() *ChatRegistry {
	return &ChatRegistry{
		rooms: make(map[uuid.UUID][]roomEntry),
	}
}

func (r *ChatRegistry) Register(chatID uuid.UUID, conn *Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[chatID] = append(r.rooms[chatID], roomEntry{userID: conn.UserID(), conn: conn})
}

// Deregister removes every entry of userID in the room. It must run on
// each socket-close path or the room keeps a stale sender.
func (r *ChatRegistry) Deregister(chatID, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.rooms[chatID]
	kept := entries[:0]
	for _, e := range entries {
		if e.userID != userID {
			kept = append(kept, e)
		}
	}

	if len(kept) == 0 {
		delete(r.rooms, chatID)
		return
	}
	r.rooms[chatID] = kept
}

// DropRoom evicts every connection from the room. Used when the chat
// owner leaves and the room is dissolved.
func (r *ChatRegistry) DropRoom(chatID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, chatID)
}

// Send attempts delivery to every socket userID holds in the room and
// reports whether at least one write succeeded. Failures are independent:
// one dead socket does not stop the others. Conn handles are cloned under
// the lock and written outside it.
func (r *ChatRegistry) Send(chatID, userID uuid.UUID, payload []byte) bool {
	r.mu.Lock()
	var conns []*Conn
	for _, e := range r.rooms[chatID] {
		if e.userID == userID {
			conns = append(conns, e.conn)
		}
	}
	r.mu.Unlock()

	delivered := false
	for _, conn := range conns {
		if conn.TrySend(payload) {
			delivered = true
		}
	}
	return delivered
}
