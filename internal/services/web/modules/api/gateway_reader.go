package api

import (
	"context"

	"github.com/mashirovoc/blog/internal/cms"
)

// NewReaderGateway adapts a CMS reader to ArticleGateway.
func NewReaderGateway(reader cms.Reader) ArticleGateway {
	if reader == nil {
		return unavailableGateway{}
	}
	return readerGateway{reader: reader}
}

type readerGateway struct {
	reader cms.Reader
}

func (g readerGateway) ListArticles(ctx context.Context, q cms.Query) (cms.ListResponse[cms.Article], error) {
	return cms.ListArticles(ctx, g.reader, q)
}

func (g readerGateway) GetArticle(ctx context.Context, id, draftKey string) (cms.Article, error) {
	return cms.GetArticle(ctx, g.reader, id, cms.Query{DraftKey: draftKey})
}
