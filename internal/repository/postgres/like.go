package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

func (r *Repository) AddPostLike(ctx context.Context, userID, postID uuid.UUID) error {
	query, args, err := sq.Insert("likes").
		Columns("user_id", "post_id").
		Values(userID, postID).
		Suffix("ON CONFLICT (user_id, post_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) RemovePostLike(ctx context.Context, userID, postID uuid.UUID) error {
	query, args, err := sq.Delete("likes").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"post_id": postID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) AddCommentLike(ctx context.Context, userID, commentID uuid.UUID) error {
	query, args, err := sq.Insert("likes").
		Columns("user_id", "comment_id").
		Values(userID, commentID).
		Suffix("ON CONFLICT (user_id, comment_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) RemoveCommentLike(ctx context.Context, userID, commentID uuid.UUID) error {
	query, args, err := sq.Delete("likes").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"comment_id": commentID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}
