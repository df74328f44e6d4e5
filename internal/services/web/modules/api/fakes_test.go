package api

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mashirovoc/blog/internal/cms"
)

// fakeReader implements cms.Reader over a fixed set of records and records
// the queries it receives.
type fakeReader struct {
	// records maps "endpoint/id" to the stored document.
	records map[string]cms.Article
	// drafts maps "endpoint/id" to the draft key required to read it.
	drafts  map[string]string
	listErr error

	mu      sync.Mutex
	queries []cms.Query
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		records: map[string]cms.Article{
			"articles/hello": {ID: "hello", Title: "Hello", Share: cms.ShareAll},
			"posts/draft-1":  {ID: "draft-1", Title: "Draft"},
		},
		drafts: map[string]string{"posts/draft-1": "dk"},
	}
}

func (f *fakeReader) record(q cms.Query) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
}

func (f *fakeReader) lastQuery() cms.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return cms.Query{}
	}
	return f.queries[len(f.queries)-1]
}

func (f *fakeReader) Get(_ context.Context, endpoint, id string, q cms.Query) (json.RawMessage, error) {
	f.record(q)
	key := endpoint + "/" + id
	article, ok := f.records[key]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", key, cms.ErrNotFound)
	}
	if want, draft := f.drafts[key]; draft && q.DraftKey != want {
		return nil, fmt.Errorf("get %s: %w", key, cms.ErrNotFound)
	}
	return json.Marshal(article)
}

func (f *fakeReader) List(_ context.Context, endpoint string, q cms.Query) (json.RawMessage, error) {
	f.record(q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	contents := []cms.Article{}
	if endpoint == cms.EndpointArticles {
		contents = append(contents, f.records["articles/hello"])
	}
	return json.Marshal(cms.ListResponse[cms.Article]{Contents: contents, TotalCount: len(contents), Limit: q.Limit, Offset: q.Offset})
}
