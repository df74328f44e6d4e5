package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
)

// Thumbnail is an article cover image.
type Thumbnail struct {
	URL    string
	Width  int
	Height int
}

// ArticleCard is one entry of an article grid or the sidebar list.
type ArticleCard struct {
	Href        string
	Title       string
	Date        string
	Thumbnail   *Thumbnail
	MembersOnly bool
}

// TagLink links to a category page.
type TagLink struct {
	Href string
	Name string
}

// ShareLink is an external share target.
type ShareLink struct {
	Network string
	Label   string
	URL     string
}

// ArticleDetail is the rendered state of one article page.
type ArticleDetail struct {
	Title       string
	Date        string
	Thumbnail   *Thumbnail
	MembersOnly bool
	Tags        []TagLink
	Share       []ShareLink
	// CanonicalURL is copied to the clipboard by the copy-link button.
	CanonicalURL string
	// Body is the CMS rich-text HTML with images rewritten.
	Body string
}

// Sidebar lists the tags and latest articles beside a detail page.
type Sidebar struct {
	Tags   []TagLink
	Latest []ArticleCard
}

// ArticleGrid renders a heading over a grid of article cards.
func ArticleGrid(site webi18n.SiteCopy, heading string, cards []ArticleCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="container"><div class="stack"><h1 class="page-heading">`)
		h.text(heading)
		h.raw("</h1>")
		writeCardGrid(h, site, cards)
		h.raw("</div></div>")
		return h.err
	})
}

// CategoryPage renders a category heading with its tagged articles.
func CategoryPage(site webi18n.SiteCopy, name string, cards []ArticleCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="container"><div class="stack"><h1 class="page-heading tag-heading"><span class="icon-tag" aria-hidden="true"></span>`)
		h.text(name)
		h.raw("</h1>")
		writeCardGrid(h, site, cards)
		h.raw("</div></div>")
		return h.err
	})
}

func writeCardGrid(h *htmlWriter, site webi18n.SiteCopy, cards []ArticleCard) {
	if len(cards) == 0 {
		h.raw(`<p class="empty">`)
		h.text(site.NoArticles)
		h.raw("</p>")
		return
	}
	h.raw(`<div class="card-grid">`)
	for _, card := range cards {
		writeCard(h, site, card, "article-card")
	}
	h.raw("</div>")
}

func writeCard(h *htmlWriter, site webi18n.SiteCopy, card ArticleCard, class string) {
	h.raw("<a")
	h.url("href", card.Href)
	h.attr("class", class)
	h.raw(`><div class="card-media">`)
	if card.Thumbnail != nil && card.Thumbnail.URL != "" {
		h.raw("<img")
		h.url("src", card.Thumbnail.URL)
		h.attr("alt", site.ThumbnailAlt)
		if card.Thumbnail.Width > 0 && card.Thumbnail.Height > 0 {
			h.intAttr("width", card.Thumbnail.Width)
			h.intAttr("height", card.Thumbnail.Height)
		}
		h.raw(` loading="lazy">`)
	} else {
		h.raw(`<div class="card-placeholder"><span class="icon-camera" aria-hidden="true"></span></div>`)
	}
	h.raw(`</div><div class="card-body"><div class="card-title">`)
	h.text(card.Title)
	h.raw("</div>")
	writeMeta(h, site, card.Date, card.MembersOnly)
	h.raw("</div></a>")
}

func writeMeta(h *htmlWriter, site webi18n.SiteCopy, date string, membersOnly bool) {
	h.raw(`<div class="meta"><span class="meta-date"><span class="icon-clock" aria-hidden="true"></span>`)
	h.text(date)
	h.raw(`</span><span class="meta-share"><span class="icon-eye" aria-hidden="true"></span>`)
	if membersOnly {
		h.raw(`<span class="badge badge-members">`)
		h.text(site.ShareMembers)
	} else {
		h.raw(`<span class="badge badge-all">`)
		h.text(site.ShareAll)
	}
	h.raw("</span></span></div>")
}

// ArticlePage renders an article body, its share bar and the sidebar.
func ArticlePage(site webi18n.SiteCopy, detail ArticleDetail, sidebar Sidebar) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="container article-layout"><article class="article">`)
		if detail.Thumbnail != nil && detail.Thumbnail.URL != "" {
			h.raw(`<div class="article-cover"><img`)
			h.url("src", detail.Thumbnail.URL)
			h.attr("alt", site.ThumbnailAlt)
			h.raw(` width="1280" height="400"></div>`)
		}
		h.raw(`<div class="article-columns"><div class="share-bar">`)
		for _, link := range detail.Share {
			h.raw("<a")
			h.url("href", link.URL)
			h.attr("class", "share-link share-"+link.Network)
			h.attr("aria-label", link.Label)
			h.raw(` target="_blank" rel="noopener noreferrer">`)
			h.text(link.Label)
			h.raw("</a>")
		}
		h.raw(`<button type="button" class="share-link share-copy" data-copy-link`)
		h.attr("data-copy-url", detail.CanonicalURL)
		h.attr("aria-label", site.CopyLink)
		h.raw(">")
		h.text(site.CopyLink)
		h.raw(`</button></div><div class="article-main"><header class="article-header"><h1>`)
		h.text(detail.Title)
		h.raw(`</h1><div class="tag-list">`)
		for _, tag := range detail.Tags {
			writeTag(h, tag)
		}
		h.raw("</div>")
		writeMeta(h, site, detail.Date, detail.MembersOnly)
		h.raw(`</header><div class="prose">`)
		h.richText(detail.Body)
		h.raw("</div></div></div></article>")
		writeSidebar(h, site, sidebar)
		h.raw("</div>")
		return h.err
	})
}

func writeTag(h *htmlWriter, tag TagLink) {
	h.raw("<a")
	h.url("href", tag.Href)
	h.raw(` class="tag"><span class="icon-tag" aria-hidden="true"></span>`)
	h.text(tag.Name)
	h.raw("</a>")
}

func writeSidebar(h *htmlWriter, site webi18n.SiteCopy, sidebar Sidebar) {
	h.raw(`<aside class="sidebar"><section class="stack-sm"><div class="sidebar-heading">`)
	h.text(site.Tags)
	h.raw(`</div><div class="tag-list">`)
	for _, tag := range sidebar.Tags {
		writeTag(h, tag)
	}
	h.raw(`</div></section><section class="stack-sm sticky"><div class="sidebar-heading">`)
	h.text(site.SidebarLatest)
	h.raw(`</div><div class="latest-list">`)
	for _, card := range sidebar.Latest {
		writeCard(h, site, card, "latest-card")
	}
	h.raw("</div></section></aside>")
}
