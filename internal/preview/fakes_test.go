package preview

import (
	"context"
	"encoding/json"

	"github.com/mashirovoc/blog/internal/cms"
)

type fakeReader struct {
	docs      map[string]string
	gotQuery  cms.Query
	gotTarget string
}

func (f *fakeReader) Get(_ context.Context, endpoint, id string, q cms.Query) (json.RawMessage, error) {
	f.gotTarget = endpoint + "/" + id
	f.gotQuery = q
	doc, ok := f.docs[endpoint+"/"+id]
	if !ok {
		return nil, cms.ErrNotFound
	}
	return json.RawMessage(doc), nil
}

func (f *fakeReader) List(context.Context, string, cms.Query) (json.RawMessage, error) {
	return json.RawMessage(`{"contents":[]}`), nil
}
