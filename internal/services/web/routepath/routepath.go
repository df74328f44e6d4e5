// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root               = "/"
	Health             = "/up"
	Theme              = "/theme"
	StaticPrefix       = "/static/"
	ArticlesPrefix     = "/articles/"
	ArticlesAll        = "/articles/all"
	ArticlePattern     = ArticlesPrefix + "{id}"
	ArticleRestPattern = ArticlesPrefix + "{id}/{rest...}"
	CategoriesPrefix   = "/categories/"
	CategoryPattern    = CategoriesPrefix + "{id}"
	PostsPrefix        = "/posts/"
	PostPattern        = PostsPrefix + "{contentId}"
	APIPrefix          = "/api/"
	APIPreview         = "/api/preview"
	APIExitPreview     = "/api/exit-preview"
	APIArticles        = "/api/articles"
	APIArticlePattern  = APIArticles + "/{id}"
	ViewerPrefix       = "/viewer/"
	ViewerManifest     = "/viewer/manifest.json"
	AssetsPrefix       = "/mmd/"
	ThemeModeQueryKey  = "mode"
	ThemeReturnKey     = "return"
)

// Article returns the article detail route.
func Article(id string) string {
	return ArticlesPrefix + escapeSegment(id)
}

// Category returns the category route.
func Category(id string) string {
	return CategoriesPrefix + escapeSegment(id)
}

// Post returns the posts-endpoint detail route used by previews.
func Post(contentID string) string {
	return PostsPrefix + escapeSegment(contentID)
}

// Content returns /{endpoint}/{id} for a CMS endpoint name.
func Content(endpoint string, id string) string {
	endpoint = strings.Trim(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return Root
	}
	return Root + escapeSegment(endpoint) + "/" + escapeSegment(id)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
