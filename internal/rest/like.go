package rest

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/acs"
	"github.com/s21platform/society-service/internal/config"
	"github.com/s21platform/society-service/internal/model"
)

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LikePost")

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

	likerID := requesterID(r)
	if err := h.guard.Check(r.Context(), likerID, acs.PostResource(post.ID, post.UserID), acs.ActionLike); err != nil {
		logger.Error(fmt.Sprintf("post like denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.AddPostLike(r.Context(), *likerID, postID); err != nil {
		logger.Error(fmt.Sprintf("failed to like post %s: %v", postID, err))
		h.writeDomainError(w, err)
		return
	}

	if post.UserID != *likerID {
		liker, err := h.repository.GetUser(r.Context(), *likerID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get liker %s: %v", likerID, err))
		} else {
			h.dispatcher.Notify(post.UserID, model.NewPostLikeEvent(post, liker.Info()))
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UnlikePost")

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

	likerID := requesterID(r)
	if err := h.guard.Check(r.Context(), likerID, acs.PostResource(post.ID, post.UserID), acs.ActionUnlike); err != nil {
		logger.Error(fmt.Sprintf("post unlike denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.RemovePostLike(r.Context(), *likerID, postID); err != nil {
		logger.Error(fmt.Sprintf("failed to unlike post %s: %v", postID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LikeComment")

	commentID, err := uuid.Parse(chi.URLParam(r, "commentId"))
	if err != nil {
		h.writeError(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	comment, err := h.repository.GetComment(r.Context(), commentID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get comment %s: %v", commentID, err))
		h.writeDomainError(w, err)
		return
	}

	likerID := requesterID(r)
	if err := h.guard.Check(r.Context(), likerID, acs.CommentResource(comment.ID, comment.UserID), acs.ActionLike); err != nil {
		logger.Error(fmt.Sprintf("comment like denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.AddCommentLike(r.Context(), *likerID, commentID); err != nil {
		logger.Error(fmt.Sprintf("failed to like comment %s: %v", commentID, err))
		h.writeDomainError(w, err)
		return
	}

	if comment.UserID != *likerID {
		liker, err := h.repository.GetUser(r.Context(), *likerID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get liker %s: %v", likerID, err))
		} else {
			h.dispatcher.Notify(comment.UserID, model.NewCommentLikeEvent(comment, liker.Info()))
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UnlikeComment")

	commentID, err := uuid.Parse(chi.URLParam(r, "commentId"))
	if err != nil {
		h.writeError(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	comment, err := h.repository.GetComment(r.Context(), commentID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get comment %s: %v", commentID, err))
		h.writeDomainError(w, err)
		return
	}

	likerID := requesterID(r)
	if err := h.guard.Check(r.Context(), likerID, acs.CommentResource(comment.ID, comment.UserID), acs.ActionUnlike); err != nil {
		logger.Error(fmt.Sprintf("comment unlike denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.RemoveCommentLike(r.Context(), *likerID, commentID); err != nil {
		logger.Error(fmt.Sprintf("failed to unlike comment %s: %v", commentID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
