// Package repositorytest provides an in-memory store for tests.
package repositorytest

import (
	"sync"
	"time"

	"github.com/Dan9191/blog-service/internal/models"
	"github.com/Dan9191/blog-service/internal/repository"
	"github.com/lib/pq"
)

// Fake is an in-memory implementation of the repository interfaces. It
// mirrors the Postgres behavior the service relies on: unique violations on
// users, ErrNotFound sentinels, and comment cascade on post delete.
type Fake struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]*models.User
	posts    map[int64]*models.Post
	comments map[int64]*models.Comment
}

// NewFake creates an empty fake store
func NewFake() *Fake {
	return &Fake{
		users:    map[int64]*models.User{},
		posts:    map[int64]*models.Post{},
		comments: map[int64]*models.Comment{},
	}
}

func (f *Fake) id() int64 {
	f.nextID++
	return f.nextID
}

// CreateUser stores a user, enforcing username and email uniqueness
func (f *Fake) CreateUser(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return &pq.Error{Code: "23505"}
		}
	}
	user.ID = f.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

// FindUserByIdentifier matches a user by username or email
func (f *Fake) FindUserByIdentifier(identifier string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == identifier || user.Email == identifier {
			found := *user
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

// PromoteAdmin sets the admin flag by email
func (f *Fake) PromoteAdmin(email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			user.IsAdmin = true
			return nil
		}
	}
	return repository.ErrNotFound
}

// CreatePost stores a post
func (f *Fake) CreatePost(post *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	post.ID = f.id()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

// FindPostByID returns a post with author and comments populated
func (f *Fake) FindPostByID(id int64) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *post
	f.populatePostAuthor(&found)
	found.Comments = f.commentsForPost(id)
	return &found, nil
}

// ListPosts returns all posts, newest first
func (f *Fake) ListPosts() ([]*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	posts := []*models.Post{}
	for id := f.nextID; id > 0; id-- {
		post, ok := f.posts[id]
		if !ok {
			continue
		}
		found := *post
		f.populatePostAuthor(&found)
		found.Comments = f.commentsForPost(found.ID)
		posts = append(posts, &found)
	}
	return posts, nil
}

// UpdatePost persists new title and content
func (f *Fake) UpdatePost(post *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.posts[post.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Title = post.Title
	stored.Content = post.Content
	stored.UpdatedAt = time.Now()
	post.UpdatedAt = stored.UpdatedAt
	return nil
}

// DeletePost removes a post and cascades to its comments
func (f *Fake) DeletePost(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.posts, id)
	for commentID, comment := range f.comments {
		if comment.PostID == id {
			delete(f.comments, commentID)
		}
	}
	return nil
}

// CreateComment stores a comment
func (f *Fake) CreateComment(comment *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment.ID = f.id()
	comment.CreatedAt = time.Now()
	stored := *comment
	f.comments[comment.ID] = &stored
	return nil
}

// FindCommentByID returns a comment with its author populated
func (f *Fake) FindCommentByID(id int64) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := *comment
	f.populateCommentAuthor(&found)
	return &found, nil
}

// ListCommentsByPost returns comments for a post, oldest first
func (f *Fake) ListCommentsByPost(postID int64) ([]*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commentsForPost(postID), nil
}

// DeleteComment removes a comment
func (f *Fake) DeleteComment(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

// ContentStats counts entities created since the given time
func (f *Fake) ContentStats(since time.Time) (*models.ContentStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &models.ContentStats{Since: since}
	for _, user := range f.users {
		if !user.CreatedAt.Before(since) {
			stats.NewUsers++
		}
	}
	for _, post := range f.posts {
		if !post.CreatedAt.Before(since) {
			stats.NewPosts++
		}
	}
	for _, comment := range f.comments {
		if !comment.CreatedAt.Before(since) {
			stats.NewComments++
		}
	}
	return stats, nil
}

// ListAdminEmails returns the emails of admin accounts
func (f *Fake) ListAdminEmails() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var emails []string
	for _, user := range f.users {
		if user.IsAdmin {
			emails = append(emails, user.Email)
		}
	}
	return emails, nil
}

func (f *Fake) populatePostAuthor(post *models.Post) {
	if user, ok := f.users[post.AuthorID]; ok {
		post.Author = models.Author{ID: user.ID, Username: user.Username, Email: user.Email}
	}
}

func (f *Fake) populateCommentAuthor(comment *models.Comment) {
	if user, ok := f.users[comment.AuthorID]; ok {
		comment.Author = models.Author{ID: user.ID, Username: user.Username}
	}
}

func (f *Fake) commentsForPost(postID int64) []*models.Comment {
	comments := []*models.Comment{}
	for id := int64(1); id <= f.nextID; id++ {
		comment, ok := f.comments[id]
		if !ok || comment.PostID != postID {
			continue
		}
		found := *comment
		f.populateCommentAuthor(&found)
		comments = append(comments, &found)
	}
	return comments
}
