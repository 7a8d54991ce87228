package models

import "time"

// Comment represents a comment attached to a post
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	PostID    int64     `json:"post"`
	AuthorID  int64     `json:"-"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
