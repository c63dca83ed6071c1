package services

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/EminenceChannel/models"
)

// SnippetLength is the number of characters of an article body shown before
// the read-more toggle. Bodies at or under the limit render in full.
const SnippetLength = 150

const (
	PostViewArticle = "article"
	PostViewVideo   = "video"
)

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

// PostView is the public representation of a post. Monthly-broadcast posts
// become video views whose image URL is an iframe embed source and which
// carry no comment thread; everything else is an article view with a
// snippet for long bodies.
type PostView struct {
	Post_ID     int     `json:"postId"`
	Kind        string  `json:"kind"`
	Title       string  `json:"title"`
	Scripture   *string `json:"scripture,omitempty"`
	Image       string  `json:"image"`
	Content     string  `json:"content"`
	ContentHTML string  `json:"contentHtml,omitempty"`
	Snippet     string  `json:"snippet,omitempty"`
	HasMore     bool    `json:"hasMore"`
	HasComments bool    `json:"hasComments"`
}

// BuildPostView shapes one post for public display.
func BuildPostView(post models.Post) PostView {
	if post.Category == models.CategoryMonthlyBroadcast {
		return PostView{
			Post_ID: post.Post_ID,
			Kind:    PostViewVideo,
			Title:   post.Title,
			Image:   post.Image,
			Content: post.Content,
		}
	}

	view := PostView{
		Post_ID:     post.Post_ID,
		Kind:        PostViewArticle,
		Title:       post.Title,
		Scripture:   post.Scripture,
		Image:       post.Image,
		Content:     post.Content,
		ContentHTML: renderMarkdown(post.Content),
		HasComments: true,
	}

	runes := []rune(post.Content)
	if len(runes) > SnippetLength {
		view.Snippet = string(runes[:SnippetLength]) + "..."
		view.HasMore = true
	} else {
		view.Snippet = post.Content
	}

	return view
}

// BuildPostViews shapes a post listing, preserving its order.
func BuildPostViews(posts []models.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, BuildPostView(post))
	}
	return views
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// Fall back to the raw body rather than dropping the post
		return content
	}
	return buf.String()
}
