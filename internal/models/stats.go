package models

import "time"

// ContentStats represents content activity over a reporting window
type ContentStats struct {
	Since       time.Time `json:"since"`
	NewUsers    int64     `json:"new_users"`
	NewPosts    int64     `json:"new_posts"`
	NewComments int64     `json:"new_comments"`
}
