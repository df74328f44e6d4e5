package service

import (
	"fmt"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
}

func registerArticleTools(registrar mcpRegistrationTarget, reader cms.Reader) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.ArticleListTool(), handler: domain.ArticleListHandler(reader)},
		{tool: domain.ArticleGetTool(), handler: domain.ArticleGetHandler(reader)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerCategoryTools(registrar mcpRegistrationTarget, reader cms.Reader) error {
	return registerTool(registrar, domain.CategoryListTool(), domain.CategoryListHandler(reader))
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if registrar == nil {
		return fmt.Errorf("mcp registrar is required")
	}
	return registrar.AddTool(tool, handler)
}
