package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatRoleOwner  = "owner"
	ChatRoleMember = "member"
)

type Chat struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      *string   `db:"name" json:"name,omitempty"`
	IsGroup   bool      `db:"is_group" json:"is_group"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ChatInfo is the wire shape of a chat inside websocket events.
type ChatInfo struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	IsGroup bool      `json:"is_group"`
}

func (c *Chat) Info() *ChatInfo {
	name := ""
	if c.Name != nil {
		name = *c.Name
	}
	return &ChatInfo{
		ID:      c.ID,
		Name:    name,
		IsGroup: c.IsGroup,
	}
}

type ChatMemberList []ChatMember

type ChatMember struct {
	ChatID uuid.UUID `db:"chat_id" json:"chat_id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`
	Role   string    `db:"role" json:"role"`
}
