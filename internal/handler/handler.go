package handler

import (
	"net/http"

	"github.com/Dan9191/blog-service/internal/feed"
	"github.com/Dan9191/blog-service/internal/service"
)

// Handler exposes the HTTP endpoints over the service layer
type Handler struct {
	svc  *service.Service
	feed *feed.Builder
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, feedBuilder *feed.Builder) *Handler {
	return &Handler{svc: svc, feed: feedBuilder}
}

// GetFeed handles GET /feed
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListPosts()
	if err != nil {
		respondError(w, err)
		return
	}

	body, err := h.feed.Render(posts)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
