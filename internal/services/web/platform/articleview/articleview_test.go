package articleview

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mashirovoc/blog/internal/cms"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

func TestImageHeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height float64
		want          int
		ok            bool
	}{
		{name: "landscape", width: 1280, height: 720, want: 360, ok: true},
		{name: "portrait capped", width: 600, height: 1200, want: 640, ok: true},
		{name: "square", width: 100, height: 100, want: 640, ok: true},
		{name: "floors", width: 3, height: 1, want: 213, ok: true},
		{name: "zero width", width: 0, height: 100, ok: false},
		{name: "missing height", width: 100, height: 0, ok: false},
	}
	for _, tc := range tests {
		got, ok := ImageHeight(tc.width, tc.height)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%s: ImageHeight = (%d, %t), want (%d, %t)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRewriteImages(t *testing.T) {
	t.Parallel()

	got, err := RewriteImages(`<h1>Title</h1><p>text <img src="https://images.example/a.png" width="1280" height="720"></p><img src="b.png" alt="cat" width="600" height="1200">`)
	if err != nil {
		t.Fatalf("RewriteImages() = %v", err)
	}
	for _, want := range []string{
		`<h1>Title</h1>`,
		`<img src="https://images.example/a.png" width="640" height="360" alt="Image" class="object-cover" loading="lazy"/>`,
		`<img src="b.png" alt="cat" width="640" height="640" class="object-cover" loading="lazy"/>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("RewriteImages missing %q in %q", want, got)
		}
	}
}

func TestRewriteImagesDropsUnusableHeight(t *testing.T) {
	t.Parallel()

	got, err := RewriteImages(`<img src="c.png" height="abc">`)
	if err != nil {
		t.Fatalf("RewriteImages() = %v", err)
	}
	if strings.Contains(got, "height=") {
		t.Fatalf("expected height to be dropped, got %q", got)
	}
	if !strings.Contains(got, `width="640"`) {
		t.Fatalf("expected fixed width, got %q", got)
	}
}

func TestRewriteImagesEmpty(t *testing.T) {
	t.Parallel()

	got, err := RewriteImages("  ")
	if err != nil || got != "" {
		t.Fatalf("RewriteImages(blank) = (%q, %v), want empty", got, err)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	published := time.Date(2024, 4, 30, 16, 0, 0, 0, time.UTC)
	if got := FormatDate(published, "2006年01月02日"); got != "2024年05月01日" {
		t.Fatalf("FormatDate(ja) = %q, want %q", got, "2024年05月01日")
	}
	if got := FormatDate(published, "Jan 2, 2006"); got != "May 1, 2024" {
		t.Fatalf("FormatDate(en) = %q, want %q", got, "May 1, 2024")
	}
	if got := FormatDate(time.Time{}, ""); got != "" {
		t.Fatalf("FormatDate(zero) = %q, want empty", got)
	}
}

func TestShareLinksEscapeQuery(t *testing.T) {
	t.Parallel()

	site := webi18n.Site(language.Japanese)
	links := ShareLinks(site, "https://mashirovoc.vercel.app/articles/a1", "Tom & Jerry")
	if len(links) != 3 {
		t.Fatalf("len(links) = %d, want 3", len(links))
	}
	x, err := url.Parse(links[0].URL)
	if err != nil {
		t.Fatalf("parse x link: %v", err)
	}
	if x.Host != "x.com" || x.Path != "/intent/post" {
		t.Fatalf("x link = %q", links[0].URL)
	}
	if got := x.Query().Get("text"); got != "Tom & Jerry / ましろさんブログ" {
		t.Fatalf("x text = %q, want %q", got, "Tom & Jerry / ましろさんブログ")
	}
	if got := x.Query().Get("url"); got != "https://mashirovoc.vercel.app/articles/a1" {
		t.Fatalf("x url = %q", got)
	}
	line, _ := url.Parse(links[1].URL)
	if line.Host != "social-plugins.line.me" || line.Query().Get("text") == "" {
		t.Fatalf("line link = %q", links[1].URL)
	}
	fb, _ := url.Parse(links[2].URL)
	if fb.Query().Get("u") != "https://mashirovoc.vercel.app/articles/a1" {
		t.Fatalf("facebook link = %q", links[2].URL)
	}
}

func TestDetailBuildsView(t *testing.T) {
	t.Parallel()

	site := webi18n.Site(language.Japanese)
	detail, err := Detail(site, "https://blog.example/", cms.Article{
		ID:          "a1",
		Title:       "Hello",
		Content:     `<img src="x.png" width="640" height="480">`,
		Share:       cms.ShareMembers,
		PublishedAt: time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC),
		Categories:  []cms.Category{{ID: "c1", Name: "日記"}},
	})
	if err != nil {
		t.Fatalf("Detail() = %v", err)
	}
	if detail.CanonicalURL != "https://blog.example/articles/a1" {
		t.Fatalf("CanonicalURL = %q", detail.CanonicalURL)
	}
	if !detail.MembersOnly {
		t.Fatal("expected members only")
	}
	if detail.Date != "2024年01月02日" {
		t.Fatalf("Date = %q", detail.Date)
	}
	if len(detail.Tags) != 1 || detail.Tags[0].Href != "/categories/c1" {
		t.Fatalf("Tags = %+v", detail.Tags)
	}
	if !strings.Contains(detail.Body, `height="480"`) {
		t.Fatalf("Body = %q", detail.Body)
	}
}

func TestCardsDefaultSiteURL(t *testing.T) {
	t.Parallel()

	if got := ArticleURL("", "a b"); got != DefaultSiteURL+"/articles/a%20b" {
		t.Fatalf("ArticleURL = %q", got)
	}
	cards := Cards(webi18n.Site(language.English), []cms.Article{{ID: "a1", Title: "one", Thumbnail: &cms.Image{URL: "t.png"}}})
	if len(cards) != 1 || cards[0].Href != "/articles/a1" || cards[0].Thumbnail == nil {
		t.Fatalf("Cards = %+v", cards)
	}
}
