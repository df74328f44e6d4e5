// Package articleview turns CMS records into page view models.
package articleview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// ImageWidth is the rendered width of every body image.
	ImageWidth = 640
	// DefaultImageAlt replaces a missing or empty alt attribute.
	DefaultImageAlt = "Image"

	imageClass   = "object-cover"
	imageLoading = "lazy"
)

// ImageHeight scales a width x height image to ImageWidth and caps the
// result at ImageWidth. ok is false when either dimension is unusable.
func ImageHeight(width, height float64) (int, bool) {
	if width <= 0 || height <= 0 || math.IsNaN(width) || math.IsNaN(height) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return 0, false
	}
	scaled := math.Min(ImageWidth*height/width, ImageWidth)
	return int(math.Floor(scaled)), true
}

// RewriteImages parses rich-text HTML and normalizes every img element:
// fixed width, proportional capped height, default alt, cover class and
// lazy loading. Other markup is re-serialized unchanged.
func RewriteImages(body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	parent := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(body), parent)
	if err != nil {
		return "", fmt.Errorf("parse article body: %w", err)
	}

	var out strings.Builder
	for _, n := range nodes {
		walk(n, rewriteImage)
		if err := html.Render(&out, n); err != nil {
			return "", fmt.Errorf("render article body: %w", err)
		}
	}
	return out.String(), nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func rewriteImage(n *html.Node) {
	if n.DataAtom != atom.Img {
		return
	}
	width, _ := strconv.ParseFloat(strings.TrimSpace(attr(n, "width")), 64)
	height, _ := strconv.ParseFloat(strings.TrimSpace(attr(n, "height")), 64)
	scaled, ok := ImageHeight(width, height)

	alt := strings.TrimSpace(attr(n, "alt"))
	if alt == "" {
		alt = DefaultImageAlt
	}

	setAttr(n, "width", strconv.Itoa(ImageWidth))
	if ok {
		setAttr(n, "height", strconv.Itoa(scaled))
	} else {
		removeAttr(n, "height")
	}
	setAttr(n, "alt", alt)
	setAttr(n, "class", imageClass)
	setAttr(n, "loading", imageLoading)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}
