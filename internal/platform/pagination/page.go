// Package pagination normalizes list paging and ordering parameters.
package pagination

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/ordering"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// OrderByConfig configures order validation. Default and Allowed use the
// CMS form: "field" ascending, "-field" descending.
type OrderByConfig struct {
	Default string
	Allowed []string
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int, cfg PageSizeConfig) int {
	pageSize := value
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// ClampOffset floors negative offsets to zero.
func ClampOffset(value int) int {
	if value < 0 {
		return 0
	}
	return value
}

// NormalizeOrderBy validates orderBy and applies defaults. Both the CMS form
// ("-publishedAt") and an AIP-132 order_by with a single field
// ("publishedAt desc") are accepted; the result is always the CMS form.
func NormalizeOrderBy(orderBy string, cfg OrderByConfig) (string, error) {
	orderBy = strings.TrimSpace(orderBy)
	if orderBy == "" {
		return cfg.Default, nil
	}
	normalized := orderBy
	if strings.ContainsAny(orderBy, " ,") {
		converted, err := fromAIP(orderBy)
		if err != nil {
			return "", err
		}
		normalized = converted
	}
	for _, allowed := range cfg.Allowed {
		if normalized == allowed {
			return normalized, nil
		}
	}
	return "", fmt.Errorf("invalid order_by: %s", orderBy)
}

type orderRequest string

func (r orderRequest) GetOrderBy() string { return string(r) }

func fromAIP(orderBy string) (string, error) {
	parsed, err := ordering.ParseOrderBy(orderRequest(orderBy))
	if err != nil {
		return "", fmt.Errorf("parse order_by: %w", err)
	}
	if len(parsed.Fields) != 1 {
		return "", fmt.Errorf("invalid order_by: %s: exactly one field is supported", orderBy)
	}
	field := parsed.Fields[0]
	if field.Desc {
		return "-" + field.Path, nil
	}
	return field.Path, nil
}
