package model

import (
	"time"

	"github.com/google/uuid"
)

type CommunityList []Community

type Community struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OwnerID     uuid.UUID `db:"owner_id" json:"owner_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Follow struct {
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	CommunityID uuid.UUID `db:"community_id" json:"community_id"`
}
