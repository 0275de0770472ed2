package model

import "github.com/google/uuid"

type Like struct {
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	PostID    *uuid.UUID `db:"post_id" json:"post_id,omitempty"`
	CommentID *uuid.UUID `db:"comment_id" json:"comment_id,omitempty"`
	LikeType  int16      `db:"like_type" json:"like_type"`
}
