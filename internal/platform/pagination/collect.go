package pagination

import "context"

// FetchPage returns one offset page and the total item count reported by
// the source.
type FetchPage[T any] func(ctx context.Context, offset, limit int) (items []T, total int, err error)

// CollectPages fetches offset pages of pageSize until total items are read
// or a short page arrives.
func CollectPages[T any](ctx context.Context, pageSize int, fetch FetchPage[T]) ([]T, error) {
	if pageSize <= 0 {
		pageSize = 1
	}
	var result []T
	offset := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, total, err := fetch(ctx, offset, pageSize)
		if err != nil {
			return nil, err
		}
		result = append(result, items...)
		offset += len(items)
		if len(items) < pageSize || offset >= total {
			break
		}
	}
	return result, nil
}
