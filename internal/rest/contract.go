//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/society-service/internal/acs"
	"github.com/s21platform/society-service/internal/model"
)

type DBRepo interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateUserProfile(ctx context.Context, userID uuid.UUID, nickname, avatarURL string) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	GetAdminUserIDs(ctx context.Context) ([]uuid.UUID, error)

	CreatePost(ctx context.Context, post *model.Post) (uuid.UUID, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*model.Post, error)
	GetPosts(ctx context.Context, limit uint64) (*model.PostList, error)
	GetUserPosts(ctx context.Context, userID uuid.UUID, limit uint64) (*model.PostList, error)
	GetCommunityPosts(ctx context.Context, communityID uuid.UUID, limit uint64) (*model.PostList, error)
	UpdatePost(ctx context.Context, postID uuid.UUID, title, content string) error
	DeletePost(ctx context.Context, postID uuid.UUID) error

	CreateComment(ctx context.Context, comment *model.Comment) (uuid.UUID, error)
	GetComment(ctx context.Context, commentID uuid.UUID) (*model.Comment, error)
	GetPostComments(ctx context.Context, postID uuid.UUID) (*model.CommentList, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error

	CreateCommunity(ctx context.Context, community *model.Community) (uuid.UUID, error)
	GetCommunity(ctx context.Context, communityID uuid.UUID) (*model.Community, error)
	GetCommunities(ctx context.Context) (*model.CommunityList, error)
	UpdateCommunity(ctx context.Context, communityID uuid.UUID, name, description string) error
	DeleteCommunity(ctx context.Context, communityID uuid.UUID) error
	FollowCommunity(ctx context.Context, userID, communityID uuid.UUID) error
	UnfollowCommunity(ctx context.Context, userID, communityID uuid.UUID) error
	GetCommunityFollowers(ctx context.Context, communityID uuid.UUID) ([]uuid.UUID, error)

	AddPostLike(ctx context.Context, userID, postID uuid.UUID) error
	RemovePostLike(ctx context.Context, userID, postID uuid.UUID) error
	AddCommentLike(ctx context.Context, userID, commentID uuid.UUID) error
	RemoveCommentLike(ctx context.Context, userID, commentID uuid.UUID) error

	CreateReport(ctx context.Context, report *model.Report) (uuid.UUID, error)
	GetReports(ctx context.Context, status string) (*model.ReportList, error)
	UpdateReportStatus(ctx context.Context, reportID uuid.UUID, status string) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type ChatService interface {
	CreateGroupChat(ctx context.Context, ownerID uuid.UUID, name string, memberIDs []uuid.UUID) (*model.Chat, error)
	CreatePrivateChat(ctx context.Context, firstID, secondID uuid.UUID) (*model.Chat, error)
	AddMember(ctx context.Context, chatID, userID uuid.UUID) (*model.ChatInfo, *model.UserInfo, error)
	RemoveMember(ctx context.Context, chatID, userID uuid.UUID) (*model.ChatInfo, *model.UserInfo, bool, error)
	GetUserChats(ctx context.Context, userID uuid.UUID) ([]model.Chat, error)
	GetChatRecentMessages(ctx context.Context, requesterID, chatID uuid.UUID, limit uint64) (*model.MessageList, error)
	IsChatMember(ctx context.Context, chatID, userID uuid.UUID) (bool, error)
}

type AccessGuard interface {
	ResolveRole(ctx context.Context, requesterID *uuid.UUID) (model.Role, error)
	Check(ctx context.Context, requesterID *uuid.UUID, resource acs.Resource, action acs.Action) error
}

// Notifier pushes an event to one user's notification socket.
type Notifier interface {
	Notify(userID uuid.UUID, event model.Event)
}

// Broadcaster fans an event out to a chat room, excluding the actor.
type Broadcaster interface {
	Broadcast(ctx context.Context, chatID, actorID uuid.UUID, event model.Event)
}
