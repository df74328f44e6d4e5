package home

import (
	"context"
	"time"

	"github.com/mashirovoc/blog/internal/cms"
)

// fakeGateway implements ContentGateway for tests with configurable return
// values.
type fakeGateway struct {
	latest    []cms.Article
	tags      []cms.Category
	latestErr error
	tagsErr   error
}

func (f fakeGateway) LatestArticles(context.Context) ([]cms.Article, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	return f.latest, nil
}

func (f fakeGateway) Tags(context.Context) ([]cms.Category, error) {
	if f.tagsErr != nil {
		return nil, f.tagsErr
	}
	return f.tags, nil
}

func sampleGateway() fakeGateway {
	return fakeGateway{
		latest: []cms.Article{{
			ID:          "first-post",
			Title:       "はじめての投稿",
			PublishedAt: time.Date(2024, 4, 30, 16, 0, 0, 0, time.UTC),
			Share:       cms.ShareAll,
		}},
		tags: []cms.Category{{ID: "tech", Name: "技術"}},
	}
}
