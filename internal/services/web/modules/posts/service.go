package posts

import (
	"context"

	"github.com/mashirovoc/blog/internal/cms"
	apperrors "github.com/mashirovoc/blog/internal/services/web/platform/errors"
)

// ContentGateway loads records of the posts endpoint.
type ContentGateway interface {
	PostDetail(ctx context.Context, id, draftKey string) (cms.Article, error)
}

type unavailableGateway struct{}

func (unavailableGateway) PostDetail(context.Context, string, string) (cms.Article, error) {
	return cms.Article{}, apperrors.E(apperrors.KindUnavailable, "content source is not configured")
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

// post returns the record or false when it cannot be loaded.
func (s service) post(ctx context.Context, contentID, draftKey string) (cms.Article, bool) {
	post, err := s.gateway.PostDetail(ctx, contentID, draftKey)
	if err != nil || post.ID == "" {
		return cms.Article{}, false
	}
	return post, true
}
