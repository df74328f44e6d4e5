// Package assets serves the viewer's model, motion and audio files.
package assets

import (
	"io/fs"
	"net/http"
	"os"
	"strings"

	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
	webhttp "github.com/mashirovoc/blog/internal/services/web/transport/http"
)

// Module serves files from a directory under /mmd/.
type Module struct {
	dir string
}

// New returns an assets module that serves nothing.
func New() Module {
	return Module{}
}

// NewWithDir returns an assets module serving dir.
func NewWithDir(dir string) Module {
	return Module{dir: strings.TrimSpace(dir)}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "assets" }

// Mount wires the asset file server.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	var files http.Handler = http.NotFoundHandler()
	if m.dir != "" {
		files = webhttp.WithStaticMime(http.StripPrefix(routepath.AssetsPrefix, http.FileServer(http.FS(fileOnlyFS{FS: os.DirFS(m.dir)}))))
	}
	mux.Handle(http.MethodGet+" "+routepath.AssetsPrefix, files)
	return module.Mount{Prefix: routepath.AssetsPrefix, Handler: mux}, nil
}

// fileOnlyFS hides directories so the file server never lists them.
type fileOnlyFS struct {
	fs.FS
}

func (f fileOnlyFS) Open(name string) (fs.File, error) {
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
