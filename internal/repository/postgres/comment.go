package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/society-service/internal/model"
)

func (r *Repository) CreateComment(ctx context.Context, comment *model.Comment) (uuid.UUID, error) {
	query, args, err := sq.Insert("comments").
		Columns("user_id", "post_id", "content").
		Values(comment.UserID, comment.PostID, comment.Content).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var commentID uuid.UUID
	err = r.Chk(ctx).GetContext(ctx, &commentID, query, args...)
	if err != nil {
		return uuid.Nil, err
	}

	return commentID, nil
}

func (r *Repository) GetComment(ctx context.Context, commentID uuid.UUID) (*model.Comment, error) {
	query, args, err := sq.Select("id", "user_id", "post_id", "content", "created_at").
		From("comments").
		Where(sq.Eq{"id": commentID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var comment model.Comment
	err = r.Chk(ctx).GetContext(ctx, &comment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *Repository) GetPostComments(ctx context.Context, postID uuid.UUID) (*model.CommentList, error) {
	query, args, err := sq.Select("id", "user_id", "post_id", "content", "created_at").
		From("comments").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var comments model.CommentList
	err = r.Chk(ctx).SelectContext(ctx, &comments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}

	return &comments, nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	query, args, err := sq.Delete("comments").
		Where(sq.Eq{"id": commentID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}
