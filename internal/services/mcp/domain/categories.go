package domain

import (
	"context"
	"fmt"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CategoryListInput represents the MCP tool input for listing categories.
type CategoryListInput struct{}

// CategorySummary is one category in a list result.
type CategorySummary struct {
	ID        string `json:"id" jsonschema:"category identifier"`
	Name      string `json:"name" jsonschema:"display name"`
	UpdatedAt string `json:"updated_at,omitempty" jsonschema:"RFC3339 update timestamp"`
}

// CategoryListResult represents the MCP tool output for listing categories.
type CategoryListResult struct {
	Categories []CategorySummary `json:"categories" jsonschema:"categories, most recently updated first"`
}

// CategoryListTool defines the MCP tool schema for listing categories.
func CategoryListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "category_list",
		Description: "Lists every category, most recently updated first.",
	}
}

// CategoryListHandler executes a category list request.
func CategoryListHandler(reader cms.Reader) mcp.ToolHandlerFor[CategoryListInput, CategoryListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CategoryListInput) (*mcp.CallToolResult, CategoryListResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, readTimeout)
		defer cancel()

		categories, err := cms.NewCatalog(reader).Tags(runCtx)
		if err != nil {
			return nil, CategoryListResult{}, fmt.Errorf("category list failed: %w", err)
		}
		result := CategoryListResult{Categories: make([]CategorySummary, 0, len(categories))}
		for _, category := range categories {
			result.Categories = append(result.Categories, CategorySummary{
				ID:        category.ID,
				Name:      category.Name,
				UpdatedAt: formatTimestamp(category.UpdatedAt),
			})
		}
		return nil, result, nil
	}
}
