package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/acs"
	"github.com/s21platform/society-service/internal/config"
	"github.com/s21platform/society-service/internal/model"
	"github.com/s21platform/society-service/internal/pkg/tx"
)

type CreatePostRequest struct {
	CommunityID uuid.UUID `json:"community_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreatePost")

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	authorID := requesterID(r)
	if err := h.guard.Check(r.Context(), authorID, acs.PostResource(uuid.Nil, uuid.Nil), acs.ActionCreate); err != nil {
		logger.Error(fmt.Sprintf("post creation denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	var post *model.Post
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if _, err := h.repository.GetCommunity(ctx, req.CommunityID); err != nil {
			logger.Error(fmt.Sprintf("failed to get community %s: %v", req.CommunityID, err))
			return err
		}

		postID, err := h.repository.CreatePost(ctx, &model.Post{
			UserID:      *authorID,
			CommunityID: req.CommunityID,
			Title:       req.Title,
			Content:     req.Content,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create post: %v", err))
			return err
		}

		post, err = h.repository.GetPost(ctx, postID)
		return err
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.notifyCommunityFollowers(r.Context(), logger, post)

	h.writeJSON(w, post, http.StatusOK)
}

// notifyCommunityFollowers pushes a new_post event to every follower of
// the post's community except the author. Best-effort, after commit.
func (h *Handler) notifyCommunityFollowers(ctx context.Context, logger logger_lib.LoggerInterface, post *model.Post) {
	followers, err := h.repository.GetCommunityFollowers(ctx, post.CommunityID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get followers of community %s: %v", post.CommunityID, err))
		return
	}

	event := model.NewPostEvent(post)
	for _, followerID := range followers {
		if followerID == post.UserID {
			continue
		}
		h.dispatcher.Notify(followerID, event)
	}
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetPost")

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		h.writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.repository.GetPost(r.Context(), postID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get post %s: %v", postID, err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, post, http.StatusOK)
}

// ListPosts returns the feed, optionally narrowed by user_id or
// community_id query parameters.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListPosts")

	var (
		posts *model.PostList
		err   error
	)

	switch {
	case r.URL.Query().Get("user_id") != "":
		userID, parseErr := uuid.Parse(r.URL.Query().Get("user_id"))
		if parseErr != nil {
			h.writeError(w, "invalid user id", http.StatusBadRequest)
			return
		}
		posts, err = h.repository.GetUserPosts(r.Context(), userID, 0)

	case r.URL.Query().Get("community_id") != "":
		communityID, parseErr := uuid.Parse(r.URL.Query().Get("community_id"))
		if parseErr != nil {
			h.writeError(w, "invalid community id", http.StatusBadRequest)
			return
		}
		posts, err = h.repository.GetCommunityPosts(r.Context(), communityID, 0)

	default:
		posts, err = h.repository.GetPosts(r.Context(), 0)
	}

	if err != nil {
		logger.Error(fmt.Sprintf("failed to list posts: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, posts, http.StatusOK)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdatePost")

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		h.writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.repository.GetPost(r.Context(), postID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get post %s: %v", postID, err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.guard.Check(r.Context(), requesterID(r), acs.PostResource(post.ID, post.UserID), acs.ActionUpdate); err != nil {
		logger.Error(fmt.Sprintf("post update denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.UpdatePost(r.Context(), postID, req.Title, req.Content); err != nil {
		logger.Error(fmt.Sprintf("failed to update post %s: %v", postID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeletePost")

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		h.writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.repository.GetPost(r.Context(), postID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get post %s: %v", postID, err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.guard.Check(r.Context(), requesterID(r), acs.PostResource(post.ID, post.UserID), acs.ActionDelete); err != nil {
		logger.Error(fmt.Sprintf("post deletion denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.DeletePost(r.Context(), postID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete post %s: %v", postID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
