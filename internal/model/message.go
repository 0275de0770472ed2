package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

type Message struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ChatID    uuid.UUID `db:"chat_id" json:"chat_id"`
	SenderID  uuid.UUID `db:"sender_id" json:"sender_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	IsDeleted bool      `db:"is_deleted" json:"is_deleted"`
}

// MessageInfo is the wire shape of a message inside websocket events
// and REST responses.
type MessageInfo struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ChatID     uuid.UUID `db:"chat_id" json:"chat_id"`
	SenderID   uuid.UUID `db:"sender_id" json:"sender_id"`
	SenderName string    `db:"sender_name" json:"sender_name"`
	Content    string    `db:"content" json:"content"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
	IsEdited   bool      `db:"is_edited" json:"is_edited"`
	IsDeleted  bool      `db:"is_deleted" json:"is_deleted"`
}
