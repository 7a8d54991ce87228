package feed

import (
	"fmt"
	"time"

	"github.com/Dan9191/blog-service/internal/config"
	"github.com/Dan9191/blog-service/internal/models"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// maxItems caps how many posts the feed carries
const maxItems = 20

// Builder renders the RSS 2.0 feed for the blog
type Builder struct {
	baseURL string
	log     *logrus.Logger
}

// NewBuilder initializes a new feed builder
func NewBuilder(cfg *config.Config, log *logrus.Logger) *Builder {
	return &Builder{baseURL: cfg.BaseURL, log: log}
}

// Render produces an RSS 2.0 document for the given posts. Posts are
// expected newest first; anything beyond the item cap is dropped.
func (b *Builder) Render(posts []*models.Post) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText("Blog Service")
	channel.CreateElement("link").SetText(b.baseURL)
	channel.CreateElement("description").SetText("Latest posts")
	channel.CreateElement("lastBuildDate").SetText(time.Now().Format(time.RFC1123Z))

	if len(posts) > maxItems {
		posts = posts[:maxItems]
	}
	for _, post := range posts {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(post.Title)
		item.CreateElement("link").SetText(fmt.Sprintf("%s/posts/%d", b.baseURL, post.ID))
		item.CreateElement("guid").SetText(fmt.Sprintf("%s/posts/%d", b.baseURL, post.ID))
		item.CreateElement("author").SetText(post.Author.Username)
		item.CreateElement("description").SetText(post.Content)
		item.CreateElement("pubDate").SetText(post.CreatedAt.Format(time.RFC1123Z))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render feed: %w", err)
	}

	b.log.Debugf("Rendered feed with %d items", len(posts))
	return out, nil
}
