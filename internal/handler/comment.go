package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dan9191/blog-service/internal/repository"
)

type createCommentRequest struct {
	Text string `json:"text"`
	Post int64  `json:"post"`
}

// AddComment handles POST /comments
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}

	comment, err := h.svc.AddComment(r.Context(), req.Text, req.Post)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// GetCommentsByPost handles GET /comments/{postId}
func (h *Handler) GetCommentsByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		return
	}

	comments, err := h.svc.GetCommentsByPost(postID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// DeleteComment handles DELETE /comments/{id}
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Comment not found")
		return
	}

	if err := h.svc.DeleteComment(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Comment not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
}
