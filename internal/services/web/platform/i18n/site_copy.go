package i18n

import (
	"fmt"
	"strings"

	webi18n "github.com/mashirovoc/blog/internal/services/web/i18n"
	"golang.org/x/text/language"
)

const siteDisplayName = "ましろさんブログ"

// SiteCopy holds translatable copy shared by every page.
type SiteCopy struct {
	Lang            string
	SiteName        string
	MetaDescription string
	Footer          string
	LanguageSwitch  string
	DateLayout      string
	ThemeToggle     string
	ThemeLight      string
	ThemeDark       string
	ThemeSystem     string
	Latest          string
	ViewAll         string
	AllArticles     string
	NoArticles      string
	ThumbnailAlt    string
	Tags            string
	SidebarLatest   string
	ShareMembers    string
	ShareAll        string
	ShareX          string
	ShareLine       string
	ShareFacebook   string
	CopyLink        string
	JSLinkCopied    string
	PreviewBanner   string
	ExitPreview     string
	ViewerTitle     string
	ViewerLoading   string
	ViewerWait      string
	ViewerFallback  string
	NotFoundTitle   string
	NotFoundMessage string
	ServerTitle     string
	ServerMessage   string
	BackHome        string
}

// Site returns localized site copy for the provided language tag.
func Site(tag language.Tag) SiteCopy {
	loc := webi18n.Printer(tag)
	return SiteCopy{
		Lang:            tag.String(),
		SiteName:        localizeWithFallback(loc, "site.name", siteDisplayName),
		MetaDescription: localizeWithFallback(loc, "meta.description", "ましろさんのブログです"),
		Footer:          localizeWithFallback(loc, "layout.footer", "© 2024 ましろ"),
		LanguageSwitch:  localizeWithFallback(loc, "layout.language", "English"),
		DateLayout:      localizeWithFallback(loc, "date.layout", "2006年01月02日"),
		ThemeToggle:     localizeWithFallback(loc, "theme.toggle", "Toggle theme"),
		ThemeLight:      localizeWithFallback(loc, "theme.light", "Light"),
		ThemeDark:       localizeWithFallback(loc, "theme.dark", "Dark"),
		ThemeSystem:     localizeWithFallback(loc, "theme.system", "System"),
		Latest:          localizeWithFallback(loc, "home.latest", "最新記事"),
		ViewAll:         localizeWithFallback(loc, "home.view_all", "すべての記事を見る"),
		AllArticles:     localizeWithFallback(loc, "articles.all.title", "すべての記事"),
		NoArticles:      localizeWithFallback(loc, "articles.empty", "記事がありません"),
		ThumbnailAlt:    localizeWithFallback(loc, "article.thumbnail_alt", "Thumbnail"),
		Tags:            localizeWithFallback(loc, "article.tags", "タグ"),
		SidebarLatest:   localizeWithFallback(loc, "article.latest", "最新記事"),
		ShareMembers:    localizeWithFallback(loc, "article.share.members", "メンバー専用"),
		ShareAll:        localizeWithFallback(loc, "article.share.all", "全員"),
		ShareX:          localizeWithFallback(loc, "article.share.x", "X"),
		ShareLine:       localizeWithFallback(loc, "article.share.line", "LINE"),
		ShareFacebook:   localizeWithFallback(loc, "article.share.facebook", "Facebook"),
		CopyLink:        localizeWithFallback(loc, "article.share.copy", "Copy link"),
		JSLinkCopied:    localizeWithFallback(loc, "article.share.copied", "リンクをコピーしました！"),
		PreviewBanner:   localizeWithFallback(loc, "preview.banner", "Preview"),
		ExitPreview:     localizeWithFallback(loc, "preview.exit", "Exit preview"),
		ViewerTitle:     localizeWithFallback(loc, "viewer.title", "Viewer"),
		ViewerLoading:   localizeWithFallback(loc, "viewer.loading", "Loading assets..."),
		ViewerWait:      localizeWithFallback(loc, "viewer.wait", "Please wait... (%d%%)", 0),
		ViewerFallback:  localizeWithFallback(loc, "viewer.unsupported", "3D viewer unavailable"),
		NotFoundTitle:   localizeWithFallback(loc, "error.not_found.title", "404 - 見つかりませんでした"),
		NotFoundMessage: localizeWithFallback(loc, "error.not_found.message", "このページは存在しないか削除されています"),
		ServerTitle:     localizeWithFallback(loc, "error.server.title", "Error"),
		ServerMessage:   localizeWithFallback(loc, "error.server.message", "Please try again later"),
		BackHome:        localizeWithFallback(loc, "error.home", "ホームに戻る"),
	}
}

// Title applies the site title template to page. An empty page yields the
// bare site name.
func (c SiteCopy) Title(page string) string {
	page = strings.TrimSpace(page)
	if page == "" {
		return c.SiteName
	}
	return fmt.Sprintf("%s / %s", page, c.SiteName)
}

func localizeWithFallback(loc Localizer, key string, fallback string, args ...any) string {
	if loc != nil {
		value := strings.TrimSpace(loc.Sprintf(key, args...))
		if value != "" && value != key {
			return value
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(fallback, args...)
	}
	return fallback
}
