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

type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateComment")

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		h.writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	authorID := requesterID(r)
	if err := h.guard.Check(r.Context(), authorID, acs.CommentResource(uuid.Nil, uuid.Nil), acs.ActionCreate); err != nil {
		logger.Error(fmt.Sprintf("comment creation denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	var comment *model.Comment
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if _, err := h.repository.GetPost(ctx, postID); err != nil {
			logger.Error(fmt.Sprintf("failed to get post %s: %v", postID, err))
			return err
		}

		commentID, err := h.repository.CreateComment(ctx, &model.Comment{
			UserID:  *authorID,
			PostID:  postID,
			Content: req.Content,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create comment: %v", err))
			return err
		}

		comment, err = h.repository.GetComment(ctx, commentID)
		return err
	})
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, comment, http.StatusOK)
}

func (h *Handler) ListPostComments(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListPostComments")

	postID, err := uuid.Parse(chi.URLParam(r, "postId"))
	if err != nil {
		h.writeError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	comments, err := h.repository.GetPostComments(r.Context(), postID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list comments of post %s: %v", postID, err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, comments, http.StatusOK)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteComment")

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

	if err := h.guard.Check(r.Context(), requesterID(r), acs.CommentResource(comment.ID, comment.UserID), acs.ActionDelete); err != nil {
		logger.Error(fmt.Sprintf("comment deletion denied: %v", err))
		h.writeDomainError(w, err)
		return
	}

	if err := h.repository.DeleteComment(r.Context(), commentID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete comment %s: %v", commentID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
