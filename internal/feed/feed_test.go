package feed

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/blog-service/internal/config"
	"github.com/Dan9191/blog-service/internal/models"
	"github.com/sirupsen/logrus"
)

func testBuilder() *Builder {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewBuilder(&config.Config{BaseURL: "http://blog.test"}, logger)
}

func TestRenderIncludesPosts(t *testing.T) {
	b := testBuilder()
	posts := []*models.Post{
		{
			ID:        3,
			Title:     "Second post",
			Content:   "More words",
			Author:    models.Author{Username: "abc"},
			CreatedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        1,
			Title:     "First post",
			Content:   "Words",
			Author:    models.Author{Username: "abc"},
			CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	out, err := b.Render(posts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := string(out)

	for _, want := range []string{
		`<rss version="2.0">`,
		"<title>Second post</title>",
		"<title>First post</title>",
		"<link>http://blog.test/posts/3</link>",
		"<author>abc</author>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("feed missing %q:\n%s", want, body)
		}
	}
}

func TestRenderCapsItems(t *testing.T) {
	b := testBuilder()
	var posts []*models.Post
	for i := 0; i < maxItems+5; i++ {
		posts = append(posts, &models.Post{
			ID:        int64(i + 1),
			Title:     fmt.Sprintf("Post %d", i+1),
			CreatedAt: time.Now(),
		})
	}

	out, err := b.Render(posts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := strings.Count(string(out), "<item>"); got != maxItems {
		t.Fatalf("expected %d items, got %d", maxItems, got)
	}
}

func TestRenderEmpty(t *testing.T) {
	out, err := testBuilder().Render(nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<channel>") {
		t.Fatalf("expected channel element:\n%s", out)
	}
}
