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

func (r *Repository) CreatePost(ctx context.Context, post *model.Post) (uuid.UUID, error) {
	query, args, err := sq.Insert("posts").
		Columns("user_id", "community_id", "title", "content").
		Values(post.UserID, post.CommunityID, post.Title, post.Content).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var postID uuid.UUID
	err = r.Chk(ctx).GetContext(ctx, &postID, query, args...)
	if err != nil {
		return uuid.Nil, err
	}

	return postID, nil
}

func (r *Repository) GetPost(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	query, args, err := sq.Select("id", "user_id", "community_id", "title", "content", "created_at", "updated_at").
		From("posts").
		Where(sq.Eq{"id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var post model.Post
	err = r.Chk(ctx).GetContext(ctx, &post, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *Repository) GetPosts(ctx context.Context, limit uint64) (*model.PostList, error) {
	return r.selectPosts(ctx, sq.Select(), limit)
}

func (r *Repository) GetUserPosts(ctx context.Context, userID uuid.UUID, limit uint64) (*model.PostList, error) {
	return r.selectPosts(ctx, sq.Select().Where(sq.Eq{"user_id": userID}), limit)
}

func (r *Repository) GetCommunityPosts(ctx context.Context, communityID uuid.UUID, limit uint64) (*model.PostList, error) {
	return r.selectPosts(ctx, sq.Select().Where(sq.Eq{"community_id": communityID}), limit)
}

func (r *Repository) selectPosts(ctx context.Context, builder sq.SelectBuilder, limit uint64) (*model.PostList, error) {
	if limit == 0 {
		limit = 50
	}

	query, args, err := builder.
		Columns("id", "user_id", "community_id", "title", "content", "created_at", "updated_at").
		From("posts").
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var posts model.PostList
	err = r.Chk(ctx).SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %v", err)
	}

	return &posts, nil
}

func (r *Repository) UpdatePost(ctx context.Context, postID uuid.UUID, title, content string) error {
	query, args, err := sq.Update("posts").
		Set("title", title).
		Set("content", content).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) DeletePost(ctx context.Context, postID uuid.UUID) error {
	query, args, err := sq.Delete("posts").
		Where(sq.Eq{"id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}
