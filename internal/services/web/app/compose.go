package app

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// ComposeInput carries the modules mounted on the root mux.
type ComposeInput struct {
	Modules []module.Module
	Static  fs.FS
}

// Compose builds a root HTTP handler from modules and static assets. Each
// module owns exactly one prefix; duplicates are rejected.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountHandler(root, feature.ID(), prefix, mount.Handler, seen); err != nil {
			return nil, err
		}
	}

	if input.Static != nil {
		files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(input.Static)))
		if err := mountHandler(root, "static", routepath.StaticPrefix, files, seen); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func mountHandler(root *http.ServeMux, id string, prefix string, handler http.Handler, seen map[string]string) error {
	if root == nil || handler == nil {
		return nil
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", id, prefix, previous)
	}
	seen[prefix] = id
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}
