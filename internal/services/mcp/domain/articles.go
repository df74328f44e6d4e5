package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/cms/filter"
	"github.com/mashirovoc/blog/internal/platform/pagination"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// readTimeout bounds one CMS round trip per tool call.
	readTimeout = 10 * time.Second

	defaultPageSize = 10
	maxPageSize     = 100
	defaultOrderBy  = "-publishedAt"
)

var allowedOrders = []string{
	"publishedAt", "-publishedAt",
	"updatedAt", "-updatedAt",
	"createdAt", "-createdAt",
}

// ArticleListInput represents the MCP tool input for listing articles.
type ArticleListInput struct {
	Limit  int    `json:"limit,omitempty" jsonschema:"page size, 1 to 100 (default 10)"`
	Offset int    `json:"offset,omitempty" jsonschema:"number of records to skip"`
	Filter string `json:"filter,omitempty" jsonschema:"AIP-160 filter, e.g. categories:\"tech\" AND share = \"all\""`
	Order  string `json:"order,omitempty" jsonschema:"sort order: -publishedAt or publishedAt desc (default -publishedAt)"`
}

// ArticleSummary is one article in a list result.
type ArticleSummary struct {
	ID           string   `json:"id" jsonschema:"article identifier"`
	Title        string   `json:"title" jsonschema:"article title"`
	PublishedAt  string   `json:"published_at,omitempty" jsonschema:"RFC3339 publish timestamp"`
	UpdatedAt    string   `json:"updated_at,omitempty" jsonschema:"RFC3339 update timestamp"`
	Share        string   `json:"share,omitempty" jsonschema:"audience: all or members"`
	Categories   []string `json:"categories" jsonschema:"category identifiers"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty" jsonschema:"thumbnail image URL"`
}

// ArticleListResult represents the MCP tool output for listing articles.
type ArticleListResult struct {
	Articles   []ArticleSummary `json:"articles" jsonschema:"matching articles"`
	TotalCount int              `json:"total_count" jsonschema:"number of matching articles"`
	Offset     int              `json:"offset" jsonschema:"offset applied"`
	Limit      int              `json:"limit" jsonschema:"page size applied"`
}

// ArticleGetInput represents the MCP tool input for reading one article.
type ArticleGetInput struct {
	ID string `json:"id" jsonschema:"article identifier"`
}

// ArticleGetResult represents the MCP tool output for reading one article.
type ArticleGetResult struct {
	Article ArticleSummary `json:"article" jsonschema:"article metadata"`
	Content string         `json:"content" jsonschema:"article body as HTML"`
}

// ArticleListTool defines the MCP tool schema for listing articles.
func ArticleListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "article_list",
		Description: "Lists published articles with paging, an AIP-160 filter and a sort order.",
	}
}

// ArticleGetTool defines the MCP tool schema for reading an article.
func ArticleGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "article_get",
		Description: "Returns one published article including its HTML body.",
	}
}

// ArticleListQuery validates input and builds the CMS query.
func ArticleListQuery(input ArticleListInput) (cms.Query, error) {
	if input.Limit < 0 {
		return cms.Query{}, fmt.Errorf("limit must not be negative")
	}
	orders, err := pagination.NormalizeOrderBy(input.Order, pagination.OrderByConfig{
		Default: defaultOrderBy,
		Allowed: allowedOrders,
	})
	if err != nil {
		return cms.Query{}, err
	}
	filters, err := filter.ParseAIP(input.Filter)
	if err != nil {
		return cms.Query{}, fmt.Errorf("invalid filter: %w", err)
	}
	return cms.Query{
		Limit:   pagination.ClampPageSize(input.Limit, pagination.PageSizeConfig{Default: defaultPageSize, Max: maxPageSize}),
		Offset:  pagination.ClampOffset(input.Offset),
		Orders:  orders,
		Filters: filters,
	}, nil
}

// ArticleListHandler executes an article list request.
func ArticleListHandler(reader cms.Reader) mcp.ToolHandlerFor[ArticleListInput, ArticleListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ArticleListInput) (*mcp.CallToolResult, ArticleListResult, error) {
		q, err := ArticleListQuery(input)
		if err != nil {
			return nil, ArticleListResult{}, err
		}

		runCtx, cancel := context.WithTimeout(ctx, readTimeout)
		defer cancel()

		resp, err := cms.ListArticles(runCtx, reader, q)
		if err != nil {
			return nil, ArticleListResult{}, fmt.Errorf("article list failed: %w", err)
		}

		result := ArticleListResult{
			Articles:   make([]ArticleSummary, 0, len(resp.Contents)),
			TotalCount: resp.TotalCount,
			Offset:     resp.Offset,
			Limit:      resp.Limit,
		}
		for _, article := range resp.Contents {
			result.Articles = append(result.Articles, summarize(article))
		}
		return nil, result, nil
	}
}

// ArticleGetHandler executes an article read request.
func ArticleGetHandler(reader cms.Reader) mcp.ToolHandlerFor[ArticleGetInput, ArticleGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ArticleGetInput) (*mcp.CallToolResult, ArticleGetResult, error) {
		id := strings.TrimSpace(input.ID)
		if id == "" {
			return nil, ArticleGetResult{}, fmt.Errorf("id is required")
		}

		runCtx, cancel := context.WithTimeout(ctx, readTimeout)
		defer cancel()

		article, err := cms.GetArticle(runCtx, reader, id, cms.Query{})
		if err != nil {
			return nil, ArticleGetResult{}, fmt.Errorf("article get failed: %w", err)
		}
		return nil, ArticleGetResult{Article: summarize(article), Content: article.Content}, nil
	}
}

func summarize(article cms.Article) ArticleSummary {
	summary := ArticleSummary{
		ID:          article.ID,
		Title:       article.Title,
		PublishedAt: formatTimestamp(article.PublishedAt),
		UpdatedAt:   formatTimestamp(article.UpdatedAt),
		Share:       article.Share,
		Categories:  make([]string, 0, len(article.Categories)),
	}
	for _, category := range article.Categories {
		summary.Categories = append(summary.Categories, category.ID)
	}
	if article.Thumbnail != nil {
		summary.ThumbnailURL = article.Thumbnail.URL
	}
	return summary
}

func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
