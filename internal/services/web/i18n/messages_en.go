package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "site.name", "ましろさんブログ")
	message.SetString(lang, "site.title", "%s / ましろさんブログ")
	message.SetString(lang, "meta.description", "Mashiro's blog")
	message.SetString(lang, "layout.footer", "© 2024 Mashiro")
	message.SetString(lang, "layout.language", "日本語")
	message.SetString(lang, "date.layout", "Jan 2, 2006")

	// Theme toggle
	message.SetString(lang, "theme.toggle", "Toggle theme")
	message.SetString(lang, "theme.light", "Light")
	message.SetString(lang, "theme.dark", "Dark")
	message.SetString(lang, "theme.system", "System")

	// Article lists
	message.SetString(lang, "home.latest", "Latest articles")
	message.SetString(lang, "home.view_all", "View all articles")
	message.SetString(lang, "articles.all.title", "All articles")
	message.SetString(lang, "articles.empty", "No articles yet")
	message.SetString(lang, "article.thumbnail_alt", "Thumbnail")

	// Article detail
	message.SetString(lang, "article.tags", "Tags")
	message.SetString(lang, "article.latest", "Latest articles")
	message.SetString(lang, "article.share.members", "Members only")
	message.SetString(lang, "article.share.all", "Everyone")
	message.SetString(lang, "article.share.x", "Share on X")
	message.SetString(lang, "article.share.line", "Share on LINE")
	message.SetString(lang, "article.share.facebook", "Share on Facebook")
	message.SetString(lang, "article.share.copy", "Copy link")
	message.SetString(lang, "article.share.copied", "Link copied!")

	// Preview
	message.SetString(lang, "preview.banner", "You are viewing a preview")
	message.SetString(lang, "preview.exit", "Exit preview")

	// Viewer
	message.SetString(lang, "viewer.title", "Viewer")
	message.SetString(lang, "viewer.loading", "Loading assets...")
	message.SetString(lang, "viewer.wait", "Please wait... (%d%%)")
	message.SetString(lang, "viewer.unsupported", "This browser cannot display the 3D viewer")

	// Errors
	message.SetString(lang, "error.not_found.title", "404 - Not found")
	message.SetString(lang, "error.not_found.message", "This page does not exist or has been deleted")
	message.SetString(lang, "error.home", "Back to home")
	message.SetString(lang, "error.server.title", "Something went wrong")
	message.SetString(lang, "error.server.message", "Please try again later")
}
