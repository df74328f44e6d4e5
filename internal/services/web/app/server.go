package app

import "net/http"

// BuildRootHandler composes the configured modules and static assets.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(ComposeInput{
		Modules: cfg.Modules,
		Static:  cfg.Static,
	})
}
