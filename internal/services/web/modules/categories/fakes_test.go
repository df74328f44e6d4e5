package categories

import (
	"context"
	"time"

	"github.com/mashirovoc/blog/internal/cms"
)

// fakeGateway implements ContentGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	categories  map[string]cms.Category
	tagged      map[string][]cms.Article
	taggedErr   error
	taggedCalls []string
}

func (f *fakeGateway) CategoryDetail(_ context.Context, id string) (cms.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return cms.Category{}, cms.ErrNotFound
	}
	return category, nil
}

func (f *fakeGateway) CategoryTaggedArticles(_ context.Context, categoryID string) ([]cms.Article, error) {
	f.taggedCalls = append(f.taggedCalls, categoryID)
	if f.taggedErr != nil {
		return nil, f.taggedErr
	}
	return f.tagged[categoryID], nil
}

func newFakeGateway() *fakeGateway {
	tech := cms.Category{ID: "tech", Name: "技術"}
	published := time.Date(2024, 4, 30, 16, 0, 0, 0, time.UTC)
	return &fakeGateway{
		categories: map[string]cms.Category{tech.ID: tech},
		tagged: map[string][]cms.Article{
			tech.ID: {
				{ID: "a1", Title: "Go入門", PublishedAt: published, Categories: []cms.Category{tech}},
				{ID: "a2", Title: "HTTP", PublishedAt: published, Categories: []cms.Category{tech}},
			},
		},
	}
}
