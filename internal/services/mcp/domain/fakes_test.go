package domain

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mashirovoc/blog/internal/cms"
)

type fakeReader struct {
	records map[string]json.RawMessage
	lists   map[string]json.RawMessage
	listErr error
	queries []cms.Query
}

func (f *fakeReader) Get(_ context.Context, endpoint, id string, _ cms.Query) (json.RawMessage, error) {
	if raw, ok := f.records[endpoint+"/"+id]; ok {
		return raw, nil
	}
	return nil, cms.ErrNotFound
}

func (f *fakeReader) List(_ context.Context, endpoint string, q cms.Query) (json.RawMessage, error) {
	f.queries = append(f.queries, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if raw, ok := f.lists[endpoint]; ok {
		return raw, nil
	}
	return nil, errors.New("unexpected endpoint " + endpoint)
}
