package cms

import (
	"context"
	"fmt"
	"strings"

	"github.com/mashirovoc/blog/internal/cms/filter"
	"github.com/mashirovoc/blog/internal/platform/pagination"
)

const (
	// LatestLimit is the size of the latest-articles list.
	LatestLimit = 10
	// TaggedLimit is the number of articles shown on a category page.
	TaggedLimit = 3
	// MaxPageSize is the largest limit the CMS accepts.
	MaxPageSize = 100

	orderPublishedDesc = "-publishedAt"
	orderUpdatedDesc   = "-updatedAt"
)

// Catalog runs the fixed content queries the site pages need.
type Catalog struct {
	reader Reader
}

// NewCatalog returns a catalog over reader.
func NewCatalog(reader Reader) Catalog {
	return Catalog{reader: reader}
}

// Reader returns the underlying reader.
func (c Catalog) Reader() Reader {
	return c.reader
}

// LatestArticles returns the newest articles by publish date.
func (c Catalog) LatestArticles(ctx context.Context) ([]Article, error) {
	resp, err := ListArticles(ctx, c.reader, Query{Limit: LatestLimit, Orders: orderPublishedDesc})
	if err != nil {
		return nil, fmt.Errorf("list latest articles: %w", err)
	}
	return resp.Contents, nil
}

// AllArticles returns every article, newest first, reading MaxPageSize
// records per request.
func (c Catalog) AllArticles(ctx context.Context) ([]Article, error) {
	articles, err := pagination.CollectPages(ctx, MaxPageSize,
		func(ctx context.Context, offset, limit int) ([]Article, int, error) {
			resp, err := ListArticles(ctx, c.reader, Query{Limit: limit, Offset: offset, Orders: orderPublishedDesc})
			if err != nil {
				return nil, 0, err
			}
			return resp.Contents, resp.TotalCount, nil
		})
	if err != nil {
		return nil, fmt.Errorf("list all articles: %w", err)
	}
	return articles, nil
}

// Tags returns categories, most recently updated first.
func (c Catalog) Tags(ctx context.Context) ([]Category, error) {
	resp, err := ListCategories(ctx, c.reader, Query{Orders: orderUpdatedDesc})
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return resp.Contents, nil
}

// CategoryTaggedArticles returns at most TaggedLimit articles that reference
// categoryID, newest first.
func (c Catalog) CategoryTaggedArticles(ctx context.Context, categoryID string) ([]Article, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, ErrNotFound
	}
	resp, err := ListArticles(ctx, c.reader, Query{
		Limit:   TaggedLimit,
		Orders:  orderPublishedDesc,
		Filters: filter.Contains("categories", categoryID),
	})
	if err != nil {
		return nil, fmt.Errorf("list articles for category %q: %w", categoryID, err)
	}
	articles := resp.Contents
	if len(articles) > TaggedLimit {
		articles = articles[:TaggedLimit]
	}
	return articles, nil
}

// ArticleDetail fetches one article. draftKey may be empty.
func (c Catalog) ArticleDetail(ctx context.Context, id, draftKey string) (Article, error) {
	if strings.TrimSpace(id) == "" {
		return Article{}, ErrNotFound
	}
	return GetArticle(ctx, c.reader, id, Query{DraftKey: draftKey})
}

// PostDetail fetches one record of the posts endpoint. draftKey may be empty.
func (c Catalog) PostDetail(ctx context.Context, id, draftKey string) (Article, error) {
	if strings.TrimSpace(id) == "" {
		return Article{}, ErrNotFound
	}
	return GetPost(ctx, c.reader, id, Query{DraftKey: draftKey})
}

// CategoryDetail fetches one category.
func (c Catalog) CategoryDetail(ctx context.Context, id string) (Category, error) {
	if strings.TrimSpace(id) == "" {
		return Category{}, ErrNotFound
	}
	return GetCategory(ctx, c.reader, id, Query{})
}
