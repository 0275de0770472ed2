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

func (r *Repository) CreateCommunity(ctx context.Context, community *model.Community) (uuid.UUID, error) {
	query, args, err := sq.Insert("communities").
		Columns("owner_id", "name", "description").
		Values(community.OwnerID, community.Name, community.Description).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var communityID uuid.UUID
	err = r.Chk(ctx).GetContext(ctx, &communityID, query, args...)
	if err != nil {
		return uuid.Nil, err
	}

	return communityID, nil
}

func (r *Repository) GetCommunity(ctx context.Context, communityID uuid.UUID) (*model.Community, error) {
	query, args, err := sq.Select("id", "owner_id", "name", "description", "created_at").
		From("communities").
		Where(sq.Eq{"id": communityID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var community model.Community
	err = r.Chk(ctx).GetContext(ctx, &community, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &community, nil
}

func (r *Repository) GetCommunities(ctx context.Context) (*model.CommunityList, error) {
	query, args, err := sq.Select("id", "owner_id", "name", "description", "created_at").
		From("communities").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var communities model.CommunityList
	err = r.Chk(ctx).SelectContext(ctx, &communities, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get communities: %v", err)
	}

	return &communities, nil
}

func (r *Repository) UpdateCommunity(ctx context.Context, communityID uuid.UUID, name, description string) error {
	query, args, err := sq.Update("communities").
		Set("name", name).
		Set("description", description).
		Where(sq.Eq{"id": communityID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) DeleteCommunity(ctx context.Context, communityID uuid.UUID) error {
	query, args, err := sq.Delete("communities").
		Where(sq.Eq{"id": communityID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) FollowCommunity(ctx context.Context, userID, communityID uuid.UUID) error {
	query, args, err := sq.Insert("community_follows").
		Columns("user_id", "community_id").
		Values(userID, communityID).
		Suffix("ON CONFLICT (user_id, community_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UnfollowCommunity(ctx context.Context, userID, communityID uuid.UUID) error {
	query, args, err := sq.Delete("community_follows").
		Where(sq.And{
			sq.Eq{"user_id": userID},
			sq.Eq{"community_id": communityID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetCommunityFollowers(ctx context.Context, communityID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := sq.Select("user_id").
		From("community_follows").
		Where(sq.Eq{"community_id": communityID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var followers []uuid.UUID
	err = r.Chk(ctx).SelectContext(ctx, &followers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get community followers: %v", err)
	}

	return followers, nil
}
