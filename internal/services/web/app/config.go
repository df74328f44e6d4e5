package app

import (
	"io/fs"

	module "github.com/mashirovoc/blog/internal/services/web/module"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
	// Static is served under /static/ when set.
	Static fs.FS
}
