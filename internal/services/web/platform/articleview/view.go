package articleview

import (
	"net/url"
	"strings"
	"time"

	"github.com/mashirovoc/blog/internal/cms"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
	webtemplates "github.com/mashirovoc/blog/internal/services/web/templates"
)

// DefaultSiteURL is the public origin used in share links.
const DefaultSiteURL = "https://mashirovoc.vercel.app"

// Dates are shown in the author's local time.
var displayZone = time.FixedZone("JST", 9*60*60)

// FormatDate renders t in the display zone with layout. A zero time yields "".
func FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = "2006年01月02日"
	}
	return t.In(displayZone).Format(layout)
}

// ArticleURL returns the absolute article URL under siteURL.
func ArticleURL(siteURL, id string) string {
	siteURL = strings.TrimRight(strings.TrimSpace(siteURL), "/")
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}
	return siteURL + routepath.Article(id)
}

// ShareLinks builds the X, LINE and Facebook share targets for an article.
// The shared text is "{title} / {site name}".
func ShareLinks(site webi18n.SiteCopy, articleURL, title string) []webtemplates.ShareLink {
	text := title + " / " + site.SiteName
	return []webtemplates.ShareLink{
		{
			Network: "x",
			Label:   site.ShareX,
			URL:     "https://x.com/intent/post?" + url.Values{"url": {articleURL}, "text": {text}}.Encode(),
		},
		{
			Network: "line",
			Label:   site.ShareLine,
			URL:     "https://social-plugins.line.me/lineit/share?" + url.Values{"url": {articleURL}, "text": {text}}.Encode(),
		},
		{
			Network: "facebook",
			Label:   site.ShareFacebook,
			URL:     "https://www.facebook.com/sharer/sharer.php?" + url.Values{"u": {articleURL}}.Encode(),
		},
	}
}

func thumbnail(img *cms.Image) *webtemplates.Thumbnail {
	if img == nil || strings.TrimSpace(img.URL) == "" {
		return nil
	}
	return &webtemplates.Thumbnail{URL: img.URL, Width: img.Width, Height: img.Height}
}

// Card converts an article into a card.
func Card(site webi18n.SiteCopy, a cms.Article) webtemplates.ArticleCard {
	return webtemplates.ArticleCard{
		Href:        routepath.Article(a.ID),
		Title:       a.Title,
		Date:        FormatDate(a.PublishedAt, site.DateLayout),
		Thumbnail:   thumbnail(a.Thumbnail),
		MembersOnly: a.MembersOnly(),
	}
}

// Cards converts articles into cards, preserving order.
func Cards(site webi18n.SiteCopy, articles []cms.Article) []webtemplates.ArticleCard {
	cards := make([]webtemplates.ArticleCard, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, Card(site, a))
	}
	return cards
}

// Tags converts categories into tag links.
func Tags(categories []cms.Category) []webtemplates.TagLink {
	tags := make([]webtemplates.TagLink, 0, len(categories))
	for _, c := range categories {
		tags = append(tags, webtemplates.TagLink{Href: routepath.Category(c.ID), Name: c.Name})
	}
	return tags
}

// Detail builds the article page state. The body images are rewritten.
func Detail(site webi18n.SiteCopy, siteURL string, a cms.Article) (webtemplates.ArticleDetail, error) {
	body, err := RewriteImages(a.Content)
	if err != nil {
		return webtemplates.ArticleDetail{}, err
	}
	canonical := ArticleURL(siteURL, a.ID)
	return webtemplates.ArticleDetail{
		Title:        a.Title,
		Date:         FormatDate(a.PublishedAt, site.DateLayout),
		Thumbnail:    thumbnail(a.Thumbnail),
		MembersOnly:  a.MembersOnly(),
		Tags:         Tags(a.Categories),
		Share:        ShareLinks(site, canonical, a.Title),
		CanonicalURL: canonical,
		Body:         body,
	}, nil
}
