package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/mashirovoc/blog/internal/platform/errors"
)

// ErrNotFound reports a missing or empty CMS record.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "cms record not found")

// Reader fetches raw CMS documents. Client and the sqlite store implement it.
type Reader interface {
	// Get fetches one record of endpoint by id.
	Get(ctx context.Context, endpoint, id string, q Query) (json.RawMessage, error)
	// List fetches a ListResponse envelope for endpoint.
	List(ctx context.Context, endpoint string, q Query) (json.RawMessage, error)
}

// GetArticle fetches one article.
func GetArticle(ctx context.Context, r Reader, id string, q Query) (Article, error) {
	return getAs[Article](ctx, r, EndpointArticles, id, q)
}

// GetPost fetches one record of the posts endpoint used by draft previews.
func GetPost(ctx context.Context, r Reader, id string, q Query) (Article, error) {
	return getAs[Article](ctx, r, EndpointPosts, id, q)
}

// GetCategory fetches one category.
func GetCategory(ctx context.Context, r Reader, id string, q Query) (Category, error) {
	return getAs[Category](ctx, r, EndpointCategories, id, q)
}

// ListArticles fetches a page of articles.
func ListArticles(ctx context.Context, r Reader, q Query) (ListResponse[Article], error) {
	return listAs[Article](ctx, r, EndpointArticles, q)
}

// ListCategories fetches a page of categories.
func ListCategories(ctx context.Context, r Reader, q Query) (ListResponse[Category], error) {
	return listAs[Category](ctx, r, EndpointCategories, q)
}

func getAs[T any](ctx context.Context, r Reader, endpoint, id string, q Query) (T, error) {
	var out T
	if r == nil {
		return out, fmt.Errorf("cms reader is not configured")
	}
	raw, err := r.Get(ctx, endpoint, id, q)
	if err != nil {
		return out, err
	}
	if isEmptyDocument(raw) {
		return out, ErrNotFound
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s/%s: %w", endpoint, id, err)
	}
	return out, nil
}

func listAs[T any](ctx context.Context, r Reader, endpoint string, q Query) (ListResponse[T], error) {
	var out ListResponse[T]
	if r == nil {
		return out, fmt.Errorf("cms reader is not configured")
	}
	raw, err := r.List(ctx, endpoint, q)
	if err != nil {
		return out, err
	}
	if isEmptyDocument(raw) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s list: %w", endpoint, err)
	}
	if out.Contents == nil {
		out.Contents = []T{}
	}
	return out, nil
}

func isEmptyDocument(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "{}":
		return true
	}
	return false
}
