package categories

import (
	"context"
	"fmt"

	"github.com/mashirovoc/blog/internal/cms"
	apperrors "github.com/mashirovoc/blog/internal/services/web/platform/errors"
)

// ContentGateway loads a category and the articles tagged with it.
type ContentGateway interface {
	CategoryDetail(ctx context.Context, id string) (cms.Category, error)
	CategoryTaggedArticles(ctx context.Context, categoryID string) ([]cms.Article, error)
}

type unavailableGateway struct{}

func (unavailableGateway) CategoryDetail(context.Context, string) (cms.Category, error) {
	return cms.Category{}, apperrors.E(apperrors.KindUnavailable, "content source is not configured")
}

func (unavailableGateway) CategoryTaggedArticles(context.Context, string) ([]cms.Article, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content source is not configured")
}

type service struct {
	gateway ContentGateway
}

func newService(gateway ContentGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// category returns the category or false when it cannot be loaded.
func (s service) category(ctx context.Context, id string) (cms.Category, bool) {
	category, err := s.gateway.CategoryDetail(ctx, id)
	if err != nil || category.ID == "" {
		return cms.Category{}, false
	}
	return category, true
}

func (s service) taggedArticles(ctx context.Context, categoryID string) ([]cms.Article, error) {
	articles, err := s.gateway.CategoryTaggedArticles(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load tagged articles: %w", err)
	}
	return articles, nil
}
