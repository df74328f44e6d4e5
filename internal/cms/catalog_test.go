package cms_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/cms/sqlitestore"
)

func seededCatalog(t *testing.T) cms.Catalog {
	t.Helper()
	store, err := sqlitestore.Open(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	music := cms.Category{ID: "music", Name: "Music", UpdatedAt: base.Add(48 * time.Hour)}
	diary := cms.Category{ID: "diary", Name: "Diary", UpdatedAt: base}
	for i := 1; i <= 12; i++ {
		cat := diary
		if i%2 == 0 {
			cat = music
		}
		a := cms.Article{
			ID:          fmt.Sprintf("a%02d", i),
			Title:       fmt.Sprintf("Article %d", i),
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
			Categories:  []cms.Category{cat},
		}
		if err := store.PutArticle(context.Background(), a); err != nil {
			t.Fatalf("put article: %v", err)
		}
	}
	return cms.NewCatalog(store)
}

func TestCatalogLatestArticles(t *testing.T) {
	t.Parallel()

	articles, err := seededCatalog(t).LatestArticles(context.Background())
	if err != nil {
		t.Fatalf("LatestArticles() error = %v", err)
	}
	if len(articles) != cms.LatestLimit {
		t.Fatalf("len = %d, want %d", len(articles), cms.LatestLimit)
	}
	if articles[0].ID != "a12" {
		t.Fatalf("first = %q, want newest a12", articles[0].ID)
	}
}

func TestCatalogAllArticlesIsUnbounded(t *testing.T) {
	t.Parallel()

	articles, err := seededCatalog(t).AllArticles(context.Background())
	if err != nil {
		t.Fatalf("AllArticles() error = %v", err)
	}
	if len(articles) != 12 {
		t.Fatalf("len = %d, want 12", len(articles))
	}
}

func TestCatalogCategoryTaggedArticles(t *testing.T) {
	t.Parallel()

	articles, err := seededCatalog(t).CategoryTaggedArticles(context.Background(), "music")
	if err != nil {
		t.Fatalf("CategoryTaggedArticles() error = %v", err)
	}
	if len(articles) == 0 || len(articles) > cms.TaggedLimit {
		t.Fatalf("len = %d, want 1..%d", len(articles), cms.TaggedLimit)
	}
	for _, a := range articles {
		if !a.HasCategory("music") {
			t.Fatalf("article %q does not reference music", a.ID)
		}
	}
}

func TestCatalogTagsOrderedByUpdate(t *testing.T) {
	t.Parallel()

	tags, err := seededCatalog(t).Tags(context.Background())
	if err != nil {
		t.Fatalf("Tags() error = %v", err)
	}
	if len(tags) != 2 || tags[0].ID != "music" {
		t.Fatalf("tags = %+v, want music first", tags)
	}
}

func TestCatalogDetailNotFound(t *testing.T) {
	t.Parallel()

	c := seededCatalog(t)
	if _, err := c.ArticleDetail(context.Background(), "missing", ""); !errors.Is(err, cms.ErrNotFound) {
		t.Fatalf("ArticleDetail() error = %v, want %v", err, cms.ErrNotFound)
	}
	if _, err := c.CategoryDetail(context.Background(), ""); !errors.Is(err, cms.ErrNotFound) {
		t.Fatalf("CategoryDetail() error = %v, want %v", err, cms.ErrNotFound)
	}
	if _, err := c.CategoryTaggedArticles(context.Background(), " "); !errors.Is(err, cms.ErrNotFound) {
		t.Fatalf("CategoryTaggedArticles() error = %v, want %v", err, cms.ErrNotFound)
	}
}

type pagedReader struct {
	total   int
	queries []cms.Query
}

func (r *pagedReader) Get(context.Context, string, string, cms.Query) (json.RawMessage, error) {
	return nil, cms.ErrNotFound
}

func (r *pagedReader) List(_ context.Context, _ string, q cms.Query) (json.RawMessage, error) {
	r.queries = append(r.queries, q)
	resp := cms.ListResponse[cms.Article]{TotalCount: r.total, Offset: q.Offset, Limit: q.Limit}
	for i := q.Offset; i < r.total && i < q.Offset+q.Limit; i++ {
		resp.Contents = append(resp.Contents, cms.Article{ID: fmt.Sprintf("a%03d", i)})
	}
	return json.Marshal(resp)
}

func TestCatalogAllArticlesPagesThroughCMS(t *testing.T) {
	t.Parallel()

	reader := &pagedReader{total: 250}
	articles, err := cms.NewCatalog(reader).AllArticles(context.Background())
	if err != nil {
		t.Fatalf("AllArticles() error = %v", err)
	}
	if len(articles) != 250 {
		t.Fatalf("len = %d, want 250", len(articles))
	}
	if len(reader.queries) != 3 {
		t.Fatalf("requests = %d, want 3", len(reader.queries))
	}
	for i, q := range reader.queries {
		if q.Limit != cms.MaxPageSize || q.Offset != i*cms.MaxPageSize {
			t.Fatalf("query %d = limit %d offset %d", i, q.Limit, q.Offset)
		}
	}
}
