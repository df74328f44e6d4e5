package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/cms/filter"
	apperrors "github.com/mashirovoc/blog/internal/platform/errors"
)

// table describes how one endpoint maps onto SQL.
type table struct {
	name    string
	kind    string
	columns map[string]string
	times   map[string]bool
}

var (
	articleColumns = map[string]string{
		"id":          "t.id",
		"title":       "t.title",
		"share":       "t.share",
		"createdAt":   "t.created_at",
		"updatedAt":   "t.updated_at",
		"publishedAt": "t.published_at",
		"revisedAt":   "t.revised_at",
	}
	categoryColumns = map[string]string{
		"id":          "t.id",
		"name":        "t.name",
		"createdAt":   "t.created_at",
		"updatedAt":   "t.updated_at",
		"publishedAt": "t.published_at",
		"revisedAt":   "t.revised_at",
	}
	timeFields = map[string]bool{
		"createdAt":   true,
		"updatedAt":   true,
		"publishedAt": true,
		"revisedAt":   true,
	}
)

func tableFor(endpoint string) (table, error) {
	switch strings.Trim(strings.TrimSpace(endpoint), "/") {
	case cms.EndpointArticles:
		return table{name: "articles", kind: cms.EndpointArticles, columns: articleColumns, times: timeFields}, nil
	case cms.EndpointPosts:
		return table{name: "articles", kind: cms.EndpointPosts, columns: articleColumns, times: timeFields}, nil
	case cms.EndpointCategories:
		return table{name: "categories", columns: categoryColumns, times: timeFields}, nil
	default:
		return table{}, apperrors.New(apperrors.CodeNotFound, fmt.Sprintf("unknown endpoint %q", endpoint))
	}
}

// Get returns one stored document.
func (s *Store) Get(ctx context.Context, endpoint, id string, q cms.Query) (json.RawMessage, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	tbl, err := tableFor(endpoint)
	if err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, cms.ErrNotFound
	}

	query := "SELECT t.doc FROM " + tbl.name + " t WHERE t.id = ?"
	args := []any{id}
	if tbl.kind != "" {
		query += " AND t.kind = ?"
		args = append(args, tbl.kind)
	}
	var doc string
	err = s.sqlDB.QueryRowContext(ctx, query, args...).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cms.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", endpoint, id, err)
	}
	return project(json.RawMessage(doc), q.Fields)
}

type listEnvelope struct {
	Contents   []json.RawMessage `json:"contents"`
	TotalCount int               `json:"totalCount"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit"`
}

// List returns a list envelope honouring limit, offset, orders and filters.
// A zero limit returns every matching record.
func (s *Store) List(ctx context.Context, endpoint string, q cms.Query) (json.RawMessage, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	tbl, err := tableFor(endpoint)
	if err != nil {
		return nil, err
	}
	where, args, err := whereClause(tbl, q.Filters)
	if err != nil {
		return nil, err
	}
	orderBy, err := orderClause(tbl, q.Orders)
	if err != nil {
		return nil, err
	}

	var total int
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+tbl.name+" t"+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count %s: %w", endpoint, err)
	}

	query := "SELECT t.doc FROM " + tbl.name + " t" + where + orderBy
	pageArgs := append([]any{}, args...)
	if q.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		pageArgs = append(pageArgs, q.Limit, q.Offset)
	} else if q.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		pageArgs = append(pageArgs, q.Offset)
	}
	rows, err := s.sqlDB.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", endpoint, err)
	}
	defer rows.Close()

	env := listEnvelope{Contents: []json.RawMessage{}, TotalCount: total, Offset: q.Offset}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan %s: %w", endpoint, err)
		}
		projected, err := project(json.RawMessage(doc), q.Fields)
		if err != nil {
			return nil, err
		}
		env.Contents = append(env.Contents, projected)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", endpoint, err)
	}
	env.Limit = q.Limit
	if env.Limit <= 0 {
		env.Limit = len(env.Contents)
	}
	out, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode %s list: %w", endpoint, err)
	}
	return out, nil
}

func whereClause(tbl table, filters string) (string, []any, error) {
	var clauses []string
	var args []any
	if tbl.kind != "" {
		clauses = append(clauses, "t.kind = ?")
		args = append(args, tbl.kind)
	}
	conds, err := filter.Parse(filters)
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.CodeInvalidFilter, "parse filters", err)
	}
	for _, cond := range conds {
		clause, condArgs, err := conditionSQL(tbl, cond)
		if err != nil {
			return "", nil, apperrors.Wrap(apperrors.CodeInvalidFilter, "translate filters", err)
		}
		clauses = append(clauses, clause)
		args = append(args, condArgs...)
	}
	if len(clauses) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func conditionSQL(tbl table, cond filter.Condition) (string, []any, error) {
	switch cond.Operator {
	case filter.OpExists:
		return "json_extract(t.doc, ?) IS NOT NULL", []any{"$." + cond.Field}, nil
	case filter.OpNotExists:
		return "json_extract(t.doc, ?) IS NULL", []any{"$." + cond.Field}, nil
	}

	if cond.Field == "categories" && tbl.kind != "" {
		switch cond.Operator {
		case filter.OpContains, filter.OpEquals:
			return "EXISTS (SELECT 1 FROM article_categories ac WHERE ac.kind = t.kind AND ac.article_id = t.id AND ac.category_id = ?)",
				[]any{cond.Value}, nil
		case filter.OpNotEquals:
			return "NOT EXISTS (SELECT 1 FROM article_categories ac WHERE ac.kind = t.kind AND ac.article_id = t.id AND ac.category_id = ?)",
				[]any{cond.Value}, nil
		}
		return "", nil, fmt.Errorf("operator %s is not supported on categories", cond.Operator)
	}

	column, ok := tbl.columns[cond.Field]
	if !ok {
		return "", nil, fmt.Errorf("unknown field: %s", cond.Field)
	}
	var value any = cond.Value
	if tbl.times[cond.Field] {
		t, err := time.Parse(time.RFC3339Nano, cond.Value)
		if err != nil {
			return "", nil, fmt.Errorf("invalid timestamp for %s: %s", cond.Field, cond.Value)
		}
		value = toMillis(t)
	}

	switch cond.Operator {
	case filter.OpEquals:
		return column + " = ?", []any{value}, nil
	case filter.OpNotEquals:
		return column + " != ?", []any{value}, nil
	case filter.OpLessThan:
		return column + " < ?", []any{value}, nil
	case filter.OpGreaterThan:
		return column + " > ?", []any{value}, nil
	case filter.OpContains:
		return "instr(" + column + ", ?) > 0", []any{cond.Value}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operator: %s", cond.Operator)
	}
}

func orderClause(tbl table, orders string) (string, error) {
	orders = strings.TrimSpace(orders)
	if orders == "" {
		return " ORDER BY t.published_at DESC, t.id", nil
	}
	var terms []string
	for _, part := range strings.Split(orders, ",") {
		part = strings.TrimSpace(part)
		direction := "ASC"
		if strings.HasPrefix(part, "-") {
			direction = "DESC"
			part = strings.TrimPrefix(part, "-")
		}
		column, ok := tbl.columns[part]
		if !ok {
			return "", apperrors.New(apperrors.CodeInvalidQuery, fmt.Sprintf("unknown order field: %s", part))
		}
		terms = append(terms, column+" "+direction)
	}
	return " ORDER BY " + strings.Join(terms, ", ") + ", t.id", nil
}

// project keeps only the named top-level fields of doc.
func project(doc json.RawMessage, fields []string) (json.RawMessage, error) {
	if len(fields) == 0 {
		return doc, nil
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(doc, &all); err != nil {
		return nil, fmt.Errorf("decode stored document: %w", err)
	}
	kept := make(map[string]json.RawMessage, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if v, ok := all[f]; ok {
			kept[f] = v
		}
	}
	out, err := json.Marshal(kept)
	if err != nil {
		return nil, fmt.Errorf("encode projected document: %w", err)
	}
	return out, nil
}
