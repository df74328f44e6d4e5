package cms

import (
	"net/url"
	"strconv"
	"strings"
)

// Query carries list and detail request parameters.
//
// Orders uses the "-field" convention for descending order. Filters uses the
// CMS grammar field[operator]value joined by [and]; see package filter.
// A zero Limit leaves the page size to the CMS.
type Query struct {
	Limit    int
	Offset   int
	Orders   string
	Filters  string
	Fields   []string
	DraftKey string
}

// Values encodes q as CMS query parameters. Zero fields are omitted.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if orders := strings.TrimSpace(q.Orders); orders != "" {
		values.Set("orders", orders)
	}
	if filters := strings.TrimSpace(q.Filters); filters != "" {
		values.Set("filters", filters)
	}
	if len(q.Fields) > 0 {
		values.Set("fields", strings.Join(q.Fields, ","))
	}
	if draftKey := strings.TrimSpace(q.DraftKey); draftKey != "" {
		values.Set("draftKey", draftKey)
	}
	return values
}
