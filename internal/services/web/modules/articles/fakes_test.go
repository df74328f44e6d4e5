package articles

import (
	"context"
	"sync"
	"time"

	"github.com/mashirovoc/blog/internal/cms"
)

// fakeGateway implements ContentGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	articles  map[string]cms.Article
	all       []cms.Article
	latest    []cms.Article
	tags      []cms.Category
	allErr    error
	latestErr error
	tagsErr   error

	mu        sync.Mutex
	draftKeys []string
}

func (f *fakeGateway) AllArticles(context.Context) ([]cms.Article, error) {
	return f.all, f.allErr
}

func (f *fakeGateway) LatestArticles(context.Context) ([]cms.Article, error) {
	return f.latest, f.latestErr
}

func (f *fakeGateway) Tags(context.Context) ([]cms.Category, error) {
	return f.tags, f.tagsErr
}

func (f *fakeGateway) ArticleDetail(_ context.Context, id, draftKey string) (cms.Article, error) {
	f.mu.Lock()
	f.draftKeys = append(f.draftKeys, draftKey)
	f.mu.Unlock()
	article, ok := f.articles[id]
	if !ok {
		return cms.Article{}, cms.ErrNotFound
	}
	return article, nil
}

func (f *fakeGateway) lastDraftKey() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.draftKeys) == 0 {
		return ""
	}
	return f.draftKeys[len(f.draftKeys)-1]
}

func newFakeGateway() *fakeGateway {
	published := time.Date(2024, 4, 30, 16, 0, 0, 0, time.UTC)
	tech := cms.Category{ID: "tech", Name: "技術"}
	post := cms.Article{
		ID:          "hello",
		Title:       "Hello & welcome",
		PublishedAt: published,
		Content:     `<p>intro</p><img src="https://images.example/a.png" width="1280" height="720">`,
		Categories:  []cms.Category{tech},
		Share:       cms.ShareMembers,
	}
	return &fakeGateway{
		articles: map[string]cms.Article{post.ID: post},
		all:      []cms.Article{post, {ID: "older", Title: "Older", PublishedAt: published.AddDate(0, -1, 0)}},
		latest:   []cms.Article{post},
		tags:     []cms.Category{tech},
	}
}
