package api

import (
	"context"
	"strconv"
	"strings"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/cms/filter"
	"github.com/mashirovoc/blog/internal/platform/pagination"
	"github.com/mashirovoc/blog/internal/preview"
	apperrors "github.com/mashirovoc/blog/internal/services/web/platform/errors"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	defaultOrderBy  = "-publishedAt"
)

var allowedOrders = []string{
	"-publishedAt", "publishedAt",
	"-updatedAt", "updatedAt",
	"-createdAt", "createdAt",
}

// ArticleGateway reads articles for the JSON API.
type ArticleGateway interface {
	ListArticles(ctx context.Context, q cms.Query) (cms.ListResponse[cms.Article], error)
	GetArticle(ctx context.Context, id, draftKey string) (cms.Article, error)
}

// PreviewGateway verifies preview targets and issues tokens.
type PreviewGateway interface {
	Enter(ctx context.Context, req preview.Request) (preview.Grant, error)
}

type unavailableGateway struct{}

func errUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "content source is not configured")
}

func (unavailableGateway) ListArticles(context.Context, cms.Query) (cms.ListResponse[cms.Article], error) {
	return cms.ListResponse[cms.Article]{}, errUnavailable()
}

func (unavailableGateway) GetArticle(context.Context, string, string) (cms.Article, error) {
	return cms.Article{}, errUnavailable()
}

type disabledPreview struct{}

func (disabledPreview) Enter(context.Context, preview.Request) (preview.Grant, error) {
	return preview.Grant{}, preview.ErrDisabled
}

// listParams are the raw query parameters of GET /api/articles.
type listParams struct {
	Limit  string
	Offset string
	Filter string
	Order  string
}

type service struct {
	articles ArticleGateway
	previews PreviewGateway
}

func newService(articles ArticleGateway, previews PreviewGateway) service {
	if articles == nil {
		articles = unavailableGateway{}
	}
	if previews == nil {
		previews = disabledPreview{}
	}
	return service{articles: articles, previews: previews}
}

// listQuery validates params and builds the CMS query.
func listQuery(params listParams) (cms.Query, error) {
	limit, err := parseInt("limit", params.Limit)
	if err != nil {
		return cms.Query{}, err
	}
	offset, err := parseInt("offset", params.Offset)
	if err != nil {
		return cms.Query{}, err
	}
	orders, err := pagination.NormalizeOrderBy(params.Order, pagination.OrderByConfig{
		Default: defaultOrderBy,
		Allowed: allowedOrders,
	})
	if err != nil {
		return cms.Query{}, apperrors.E(apperrors.KindInvalidInput, err.Error())
	}
	filters, err := filter.ParseAIP(params.Filter)
	if err != nil {
		return cms.Query{}, apperrors.E(apperrors.KindInvalidInput, "invalid filter: "+err.Error())
	}
	return cms.Query{
		Limit:   pagination.ClampPageSize(limit, pagination.PageSizeConfig{Default: defaultPageSize, Max: maxPageSize}),
		Offset:  pagination.ClampOffset(offset),
		Orders:  orders,
		Filters: filters,
	}, nil
}

func parseInt(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.E(apperrors.KindInvalidInput, name+" must be an integer")
	}
	return value, nil
}

func (s service) listArticles(ctx context.Context, params listParams) (cms.ListResponse[cms.Article], error) {
	q, err := listQuery(params)
	if err != nil {
		return cms.ListResponse[cms.Article]{}, err
	}
	resp, err := s.articles.ListArticles(ctx, q)
	if err != nil {
		return cms.ListResponse[cms.Article]{}, err
	}
	if resp.Contents == nil {
		resp.Contents = []cms.Article{}
	}
	return resp, nil
}

func (s service) getArticle(ctx context.Context, id, draftKey string) (cms.Article, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cms.Article{}, cms.ErrNotFound
	}
	return s.articles.GetArticle(ctx, id, draftKey)
}

func (s service) enterPreview(ctx context.Context, req preview.Request) (preview.Grant, error) {
	return s.previews.Enter(ctx, req)
}
