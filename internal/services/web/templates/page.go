package templates

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
	"github.com/mashirovoc/blog/internal/services/web/platform/theme"
)

// Theme values understood by the layout and the theme script.
const (
	ThemeLight  = theme.Light
	ThemeDark   = theme.Dark
	ThemeSystem = theme.System
)

// Page carries the shell state for a full page render.
type Page struct {
	// Title is the document title before the site suffix is applied.
	Title       string
	Description string
	Copy        webi18n.SiteCopy
	Theme       string
	Preview     bool
	Path        string
	RawQuery    string
	// Scripts are extra script paths loaded after site.js.
	Scripts []string
}

// DocumentTitle returns the title shown in the browser tab.
func (p Page) DocumentTitle() string {
	return p.Copy.Title(p.Title)
}

// Layout renders the document shell around its children.
func Layout(page Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		lang := page.Copy.Lang
		if lang == "" {
			lang = "ja"
		}
		mode := normalizeTheme(page.Theme)
		description := page.Description
		if description == "" {
			description = page.Copy.MetaDescription
		}

		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.attr("data-theme", mode)
		if mode == ThemeDark {
			h.attr("class", "dark")
		}
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(page.DocumentTitle())
		h.raw(`</title><meta name="description"`)
		h.attr("content", description)
		h.raw(`><link rel="stylesheet" href="/static/site.css"><script src="/static/site.js" defer></script>`)
		for _, script := range page.Scripts {
			h.raw("<script")
			h.url("src", script)
			h.raw(" defer></script>")
		}
		h.raw("</head><body")
		h.attr("data-link-copied", page.Copy.JSLinkCopied)
		h.raw(`><header class="site-header"><a href="/" class="site-title">`)
		h.text(page.Copy.SiteName)
		h.raw(`</a><div class="site-controls">`)
		writeThemeMenu(h, page, mode)
		h.raw("<a")
		h.attr("class", "language-switch")
		h.url("href", LanguageURL(page.Path, page.RawQuery, alternateLanguage(lang)))
		h.raw(">")
		h.text(page.Copy.LanguageSwitch)
		h.raw("</a></div></header>")
		if page.Preview {
			h.raw(`<div class="preview-banner" role="status">`)
			h.text(page.Copy.PreviewBanner)
			h.raw(` <a href="/api/exit-preview">`)
			h.text(page.Copy.ExitPreview)
			h.raw("</a></div>")
		}
		h.raw(`<main class="site-main">`)
		h.children(ctx)
		h.raw(`</main><footer class="site-footer"><div class="container">`)
		h.text(page.Copy.Footer)
		h.raw(`</div></footer><div id="toast" class="toast" role="status" aria-live="polite" hidden></div></body></html>`)
		return h.err
	})
}

func writeThemeMenu(h *htmlWriter, page Page, active string) {
	returnTo := page.Path
	if returnTo == "" {
		returnTo = "/"
	}
	h.raw(`<nav class="theme-toggle"`)
	h.attr("aria-label", page.Copy.ThemeToggle)
	h.raw(">")
	for _, option := range []struct{ mode, label string }{
		{ThemeLight, page.Copy.ThemeLight},
		{ThemeDark, page.Copy.ThemeDark},
		{ThemeSystem, page.Copy.ThemeSystem},
	} {
		values := url.Values{}
		values.Set("mode", option.mode)
		values.Set("return", returnTo)
		h.raw("<a")
		h.url("href", "/theme?"+values.Encode())
		h.attr("data-theme-option", option.mode)
		if option.mode == active {
			h.attr("aria-current", "true")
		}
		h.raw(">")
		h.text(option.label)
		h.raw("</a>")
	}
	h.raw("</nav>")
}

func normalizeTheme(value string) string {
	if mode, ok := theme.Parse(value); ok {
		return mode
	}
	return ThemeSystem
}

func alternateLanguage(lang string) string {
	if strings.HasPrefix(strings.ToLower(lang), "en") {
		return "ja"
	}
	return "en"
}

// LanguageURL returns path with its lang query parameter set to tag.
func LanguageURL(path, rawQuery, tag string) string {
	if path == "" {
		path = "/"
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set("lang", tag)
	return path + "?" + values.Encode()
}
