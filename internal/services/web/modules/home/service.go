package home

import (
	"context"
	"fmt"

	"github.com/mashirovoc/blog/internal/cms"
	apperrors "github.com/mashirovoc/blog/internal/services/web/platform/errors"
	"golang.org/x/sync/errgroup"
)

// ContentGateway loads the lists shown on the landing page.
type ContentGateway interface {
	LatestArticles(context.Context) ([]cms.Article, error)
	Tags(context.Context) ([]cms.Category, error)
}

type unavailableGateway struct{}

func (unavailableGateway) LatestArticles(context.Context) ([]cms.Article, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content source is not configured")
}

func (unavailableGateway) Tags(context.Context) ([]cms.Category, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content source is not configured")
}

type landing struct {
	latest []cms.Article
	tags   []cms.Category
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

// loadLanding fetches both lists concurrently. Either failure fails the page.
func (s service) loadLanding(ctx context.Context) (landing, error) {
	var out landing
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		latest, err := s.gateway.LatestArticles(gctx)
		if err != nil {
			return fmt.Errorf("load latest articles: %w", err)
		}
		out.latest = latest
		return nil
	})
	g.Go(func() error {
		tags, err := s.gateway.Tags(gctx)
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		out.tags = tags
		return nil
	})
	if err := g.Wait(); err != nil {
		return landing{}, err
	}
	return out, nil
}
