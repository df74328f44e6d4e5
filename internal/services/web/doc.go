// Package web hosts the blog's browser-facing HTTP surface.
//
// Feature modules (home, articles, categories, posts, api, viewer, assets)
// are composed onto one root mux and wrapped in the shared middleware chain.
// Content comes from a cms.Catalog; preview state travels in a signed cookie.
package web
