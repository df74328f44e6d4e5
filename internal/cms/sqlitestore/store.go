// Package sqlitestore serves CMS content from a local SQLite database.
//
// It implements cms.Reader over the same query contract as the HTTP client,
// so pages can be developed and tested without a CMS account. Draft keys are
// accepted and ignored; every stored record is treated as published.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/cms/sqlitestore/migrations"
	"github.com/mashirovoc/blog/internal/platform/storage/sqlitemigrate"
)

const memoryPath = ":memory:"

// Store persists CMS documents in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ cms.Reader = (*Store)(nil)

func toMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

// Open opens a store at path and applies embedded migrations.
// The path ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path != memoryPath {
		dsn += "&_pragma=journal_mode(WAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == memoryPath {
		// Each connection to :memory: is a separate database.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutCategory inserts or replaces a category.
func (s *Store) PutCategory(ctx context.Context, category cms.Category) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return putCategory(ctx, s.sqlDB, category)
}

// PutArticle inserts or replaces an article of the articles endpoint.
// Referenced categories carrying a name are upserted alongside it; id-only
// references create a placeholder only when the category is missing.
func (s *Store) PutArticle(ctx context.Context, article cms.Article) error {
	return s.putArticle(ctx, cms.EndpointArticles, article)
}

// PutPost inserts or replaces a record of the posts endpoint.
func (s *Store) PutPost(ctx context.Context, post cms.Article) error {
	return s.putArticle(ctx, cms.EndpointPosts, post)
}

func (s *Store) putArticle(ctx context.Context, kind string, article cms.Article) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	id := strings.TrimSpace(article.ID)
	if id == "" {
		return fmt.Errorf("article id is required")
	}
	if article.Share == "" {
		article.Share = cms.ShareAll
	}
	if article.Categories == nil {
		article.Categories = []cms.Category{}
	}
	doc, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("encode article %s: %w", id, err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put article: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, category := range article.Categories {
		put := putCategory
		if strings.TrimSpace(category.Name) == "" {
			put = ensureCategory
		}
		if err := put(ctx, tx, category); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO articles (kind, id, title, share, created_at, updated_at, published_at, revised_at, doc)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(kind, id) DO UPDATE SET
    title = excluded.title,
    share = excluded.share,
    created_at = excluded.created_at,
    updated_at = excluded.updated_at,
    published_at = excluded.published_at,
    revised_at = excluded.revised_at,
    doc = excluded.doc`,
		kind, id, article.Title, article.Share,
		toMillis(article.CreatedAt), toMillis(article.UpdatedAt),
		toMillis(article.PublishedAt), toMillis(article.RevisedAt),
		string(doc),
	); err != nil {
		return fmt.Errorf("put article %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM article_categories WHERE kind = ? AND article_id = ?`, kind, id); err != nil {
		return fmt.Errorf("clear article categories %s: %w", id, err)
	}
	for _, category := range article.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO article_categories (kind, article_id, category_id) VALUES (?, ?, ?)`,
			kind, id, strings.TrimSpace(category.ID),
		); err != nil {
			return fmt.Errorf("link article %s to category %s: %w", id, category.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put article %s: %w", id, err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putCategory(ctx context.Context, db execer, category cms.Category) error {
	id := strings.TrimSpace(category.ID)
	if id == "" {
		return fmt.Errorf("category id is required")
	}
	doc, err := json.Marshal(category)
	if err != nil {
		return fmt.Errorf("encode category %s: %w", id, err)
	}
	if _, err := db.ExecContext(ctx, `
INSERT INTO categories (id, name, created_at, updated_at, published_at, revised_at, doc)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    created_at = excluded.created_at,
    updated_at = excluded.updated_at,
    published_at = excluded.published_at,
    revised_at = excluded.revised_at,
    doc = excluded.doc`,
		id, category.Name,
		toMillis(category.CreatedAt), toMillis(category.UpdatedAt),
		toMillis(category.PublishedAt), toMillis(category.RevisedAt),
		string(doc),
	); err != nil {
		return fmt.Errorf("put category %s: %w", id, err)
	}
	return nil
}

// ensureCategory inserts category unless its id is already stored.
func ensureCategory(ctx context.Context, db execer, category cms.Category) error {
	id := strings.TrimSpace(category.ID)
	if id == "" {
		return fmt.Errorf("category id is required")
	}
	doc, err := json.Marshal(category)
	if err != nil {
		return fmt.Errorf("encode category %s: %w", id, err)
	}
	if _, err := db.ExecContext(ctx, `
INSERT INTO categories (id, name, created_at, updated_at, published_at, revised_at, doc)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO NOTHING`,
		id, category.Name,
		toMillis(category.CreatedAt), toMillis(category.UpdatedAt),
		toMillis(category.PublishedAt), toMillis(category.RevisedAt),
		string(doc),
	); err != nil {
		return fmt.Errorf("ensure category %s: %w", id, err)
	}
	return nil
}

// Seed is the document shape accepted by Import.
type Seed struct {
	Categories []cms.Category `json:"categories"`
	Articles   []cms.Article  `json:"articles"`
	Posts      []cms.Article  `json:"posts"`
}

// Import loads a JSON Seed document into the store.
func (s *Store) Import(ctx context.Context, r io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}
	for _, category := range seed.Categories {
		if err := s.PutCategory(ctx, category); err != nil {
			return err
		}
	}
	for _, article := range seed.Articles {
		if err := s.PutArticle(ctx, article); err != nil {
			return err
		}
	}
	for _, post := range seed.Posts {
		if err := s.PutPost(ctx, post); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}
