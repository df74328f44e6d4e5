package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Japanese

	// Layout
	message.SetString(lang, "site.name", "ましろさんブログ")
	message.SetString(lang, "site.title", "%s / ましろさんブログ")
	message.SetString(lang, "meta.description", "ましろさんのブログです")
	message.SetString(lang, "layout.footer", "© 2024 ましろ")
	message.SetString(lang, "layout.language", "English")
	message.SetString(lang, "date.layout", "2006年01月02日")

	// Theme toggle
	message.SetString(lang, "theme.toggle", "テーマを切り替える")
	message.SetString(lang, "theme.light", "Light")
	message.SetString(lang, "theme.dark", "Dark")
	message.SetString(lang, "theme.system", "System")

	// Article lists
	message.SetString(lang, "home.latest", "最新記事")
	message.SetString(lang, "home.view_all", "すべての記事を見る")
	message.SetString(lang, "articles.all.title", "すべての記事")
	message.SetString(lang, "articles.empty", "記事がありません")
	message.SetString(lang, "article.thumbnail_alt", "Thumbnail")

	// Article detail
	message.SetString(lang, "article.tags", "タグ")
	message.SetString(lang, "article.latest", "最新記事")
	message.SetString(lang, "article.share.members", "メンバー専用")
	message.SetString(lang, "article.share.all", "全員")
	message.SetString(lang, "article.share.x", "X でシェア")
	message.SetString(lang, "article.share.line", "LINE でシェア")
	message.SetString(lang, "article.share.facebook", "Facebook でシェア")
	message.SetString(lang, "article.share.copy", "リンクをコピー")
	message.SetString(lang, "article.share.copied", "リンクをコピーしました！")

	// Preview
	message.SetString(lang, "preview.banner", "プレビューモードで表示しています")
	message.SetString(lang, "preview.exit", "プレビューを終了")

	// Viewer
	message.SetString(lang, "viewer.title", "ビューア")
	message.SetString(lang, "viewer.loading", "Loading assets...")
	message.SetString(lang, "viewer.wait", "Please wait... (%d%%)")
	message.SetString(lang, "viewer.unsupported", "このブラウザでは 3D ビューアを表示できません")

	// Errors
	message.SetString(lang, "error.not_found.title", "404 - 見つかりませんでした")
	message.SetString(lang, "error.not_found.message", "このページは存在しないか削除されています")
	message.SetString(lang, "error.home", "ホームに戻る")
	message.SetString(lang, "error.server.title", "エラーが発生しました")
	message.SetString(lang, "error.server.message", "時間をおいて再度お試しください")
}
