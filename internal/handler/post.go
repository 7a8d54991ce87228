package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Dan9191/blog-service/internal/repository"
	"github.com/gorilla/mux"
)

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ListPosts handles GET /posts
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts()
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetPost handles GET /posts/{id}
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		return
	}

	post, err := h.svc.GetPost(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// CreatePost handles POST /posts
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}

	post, err := h.svc.CreatePost(r.Context(), req.Title, req.Content)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// UpdatePost handles PATCH /posts/{id}
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}

	post, err := h.svc.UpdatePost(r.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/{id}
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		return
	}

	if err := h.svc.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
