package articles

import (
	"context"
	"fmt"

	"github.com/mashirovoc/blog/internal/cms"
	apperrors "github.com/mashirovoc/blog/internal/services/web/platform/errors"
	"golang.org/x/sync/errgroup"
)

// ContentGateway loads article lists and details.
type ContentGateway interface {
	AllArticles(context.Context) ([]cms.Article, error)
	LatestArticles(context.Context) ([]cms.Article, error)
	Tags(context.Context) ([]cms.Category, error)
	ArticleDetail(ctx context.Context, id, draftKey string) (cms.Article, error)
}

type unavailableGateway struct{}

func errUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "content source is not configured")
}

func (unavailableGateway) AllArticles(context.Context) ([]cms.Article, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) LatestArticles(context.Context) ([]cms.Article, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) Tags(context.Context) ([]cms.Category, error) {
	return nil, errUnavailable()
}

func (unavailableGateway) ArticleDetail(context.Context, string, string) (cms.Article, error) {
	return cms.Article{}, errUnavailable()
}

// sidebar is the data shown beside an article.
type sidebar struct {
	tags   []cms.Category
	latest []cms.Article
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

func (s service) allArticles(ctx context.Context) ([]cms.Article, error) {
	return s.gateway.AllArticles(ctx)
}

// article returns the article or false when it cannot be loaded. Any detail
// failure is reported as a missing page.
func (s service) article(ctx context.Context, id, draftKey string) (cms.Article, bool) {
	article, err := s.gateway.ArticleDetail(ctx, id, draftKey)
	if err != nil || article.ID == "" {
		return cms.Article{}, false
	}
	return article, true
}

func (s service) sidebar(ctx context.Context) (sidebar, error) {
	var out sidebar
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tags, err := s.gateway.Tags(gctx)
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		out.tags = tags
		return nil
	})
	g.Go(func() error {
		latest, err := s.gateway.LatestArticles(gctx)
		if err != nil {
			return fmt.Errorf("load latest articles: %w", err)
		}
		out.latest = latest
		return nil
	})
	if err := g.Wait(); err != nil {
		return sidebar{}, err
	}
	return out, nil
}
