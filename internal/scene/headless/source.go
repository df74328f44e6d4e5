package headless

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

// Source opens viewer assets by manifest path. size is -1 when unknown.
type Source interface {
	Open(ctx context.Context, path string) (rc io.ReadCloser, size int64, err error)
}

// DirSource serves assets from a file system. Prefix is stripped from
// manifest paths, so "/mmd/Towa.bpmx" with prefix "/mmd" opens "Towa.bpmx".
type DirSource struct {
	FS     fs.FS
	Prefix string
}

// NewDirSource returns a source rooted at dir.
func NewDirSource(dir, prefix string) DirSource {
	return DirSource{FS: os.DirFS(dir), Prefix: prefix}
}

func (s DirSource) Open(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	name := strings.TrimPrefix(path, s.Prefix)
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) {
		return nil, 0, fmt.Errorf("invalid asset path %q", path)
	}
	f, err := s.FS.Open(name)
	if err != nil {
		return nil, 0, fmt.Errorf("open asset %q: %w", path, err)
	}
	size := int64(-1)
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}
	return f, size, nil
}

// HTTPSource fetches assets relative to BaseURL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (s HTTPSource) Open(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	url := strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build asset request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch asset %q: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("fetch asset %q: HTTP %d", path, resp.StatusCode)
	}
	return resp.Body, resp.ContentLength, nil
}

const readChunk = 32 << 10

// readAsset reads path fully, reporting byte progress after every chunk.
// When the size is unknown the final report uses the byte count as total.
func readAsset(ctx context.Context, src Source, path string, progress func(loaded, total int64)) ([]byte, error) {
	rc, size, err := src.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	report := func(loaded, total int64) {
		if progress != nil {
			progress(loaded, total)
		}
	}
	report(0, size)

	var data []byte
	if size > 0 {
		data = make([]byte, 0, size)
	}
	buf := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := rc.Read(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
			report(int64(len(data)), size)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read asset %q: %w", path, err)
		}
	}
	if size <= 0 {
		report(int64(len(data)), int64(len(data)))
	}
	return data, nil
}
