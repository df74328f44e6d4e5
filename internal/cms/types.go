package cms

import "time"

// Endpoint names served by the CMS.
const (
	EndpointArticles   = "articles"
	EndpointCategories = "categories"
	EndpointPosts      = "posts"
)

// Share values for Article.Share.
const (
	ShareAll     = "all"
	ShareMembers = "members"
)

// Image is a CMS-hosted image reference.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Category tags articles.
type Category struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	PublishedAt time.Time `json:"publishedAt"`
	RevisedAt   time.Time `json:"revisedAt"`
	Name        string    `json:"name"`
}

// Article is a blog entry. Content holds rich-text HTML.
type Article struct {
	ID          string     `json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt time.Time  `json:"publishedAt"`
	RevisedAt   time.Time  `json:"revisedAt"`
	Thumbnail   *Image     `json:"thumbnail,omitempty"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Categories  []Category `json:"categories"`
	Share       string     `json:"share"`
}

// MembersOnly reports whether the article is restricted to members.
func (a Article) MembersOnly() bool {
	return a.Share == ShareMembers
}

// HasCategory reports whether the article references categoryID.
func (a Article) HasCategory(categoryID string) bool {
	for _, c := range a.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// ListResponse is the paged envelope returned by list endpoints.
type ListResponse[T any] struct {
	Contents   []T `json:"contents"`
	TotalCount int `json:"totalCount"`
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
}
