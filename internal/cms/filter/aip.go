package filter

import (
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	apperrors "github.com/mashirovoc/blog/internal/platform/errors"
)

// field describes how an AIP identifier maps onto a CMS field.
type field struct {
	name     string
	typ      *expr.Type
	equality Operator
}

var articleFields = map[string]field{
	"category":    {name: "categories", typ: filtering.TypeString, equality: OpContains},
	"share":       {name: "share", typ: filtering.TypeString, equality: OpEquals},
	"title":       {name: "title", typ: filtering.TypeString, equality: OpEquals},
	"publishedAt": {name: "publishedAt", typ: filtering.TypeTimestamp, equality: OpEquals},
}

// ArticleDeclarations returns the identifiers accepted in article filters.
func ArticleDeclarations() (*filtering.Declarations, error) {
	opts := []filtering.DeclarationOption{filtering.DeclareStandardFunctions()}
	for ident, f := range articleFields {
		opts = append(opts, filtering.DeclareIdent(ident, f.typ))
	}
	return filtering.NewDeclarations(opts...)
}

// ParseAIP translates an AIP-160 article filter into the CMS grammar.
//
//	category = "tech" AND share != "members"
//
// becomes categories[contains]tech[and]share[not_equals]members.
// Only conjunctions are supported; OR and NOT are rejected.
func ParseAIP(filterStr string) (string, error) {
	if strings.TrimSpace(filterStr) == "" {
		return "", nil
	}
	decls, err := ArticleDeclarations()
	if err != nil {
		return "", fmt.Errorf("create declarations: %w", err)
	}
	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInvalidFilter, "parse filter", err)
	}
	conds, err := translateExpr(parsed.CheckedExpr.GetExpr())
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInvalidFilter, "translate filter", err)
	}
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		parts = append(parts, c.String())
	}
	return And(parts...), nil
}

func translateExpr(e *expr.Expr) ([]Condition, error) {
	if e == nil {
		return nil, nil
	}
	call, ok := e.GetExprKind().(*expr.Expr_CallExpr)
	if !ok {
		return nil, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	return translateCall(call.CallExpr)
}

func translateCall(call *expr.Expr_Call) ([]Condition, error) {
	switch call.GetFunction() {
	case "AND", "_&&_":
		if len(call.GetArgs()) != 2 {
			return nil, fmt.Errorf("AND requires 2 arguments")
		}
		left, err := translateExpr(call.GetArgs()[0])
		if err != nil {
			return nil, err
		}
		right, err := translateExpr(call.GetArgs()[1])
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	case "=", "_==_":
		return comparison(call.GetArgs(), "")
	case "!=", "_!=_":
		return comparison(call.GetArgs(), OpNotEquals)
	case ":":
		return comparison(call.GetArgs(), OpContains)
	case "<", "_<_":
		return comparison(call.GetArgs(), OpLessThan)
	case ">", "_>_":
		return comparison(call.GetArgs(), OpGreaterThan)
	default:
		return nil, fmt.Errorf("unsupported function: %s", call.GetFunction())
	}
}

// comparison builds one condition; an empty op selects the field's equality.
func comparison(args []*expr.Expr, op Operator) ([]Condition, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("comparison requires 2 arguments")
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return nil, fmt.Errorf("expected identifier, got %T", args[0].GetExprKind())
	}
	f, ok := articleFields[ident.IdentExpr.GetName()]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", ident.IdentExpr.GetName())
	}
	if op == "" {
		op = f.equality
	}
	value, err := extractValue(args[1])
	if err != nil {
		return nil, err
	}
	return []Condition{{Field: f.name, Operator: op, Value: value}}, nil
}

func extractValue(e *expr.Expr) (string, error) {
	switch kind := e.GetExprKind().(type) {
	case *expr.Expr_ConstExpr:
		if s, ok := kind.ConstExpr.GetConstantKind().(*expr.Constant_StringValue); ok {
			return s.StringValue, nil
		}
		return "", fmt.Errorf("unsupported constant type: %T", kind.ConstExpr.GetConstantKind())
	case *expr.Expr_CallExpr:
		if kind.CallExpr.GetFunction() == "timestamp" && len(kind.CallExpr.GetArgs()) == 1 {
			return extractTimestamp(kind.CallExpr.GetArgs()[0])
		}
		return "", fmt.Errorf("unsupported function in value position: %s", kind.CallExpr.GetFunction())
	default:
		return "", fmt.Errorf("expected constant or timestamp, got %T", kind)
	}
}

func extractTimestamp(e *expr.Expr) (string, error) {
	constExpr, ok := e.GetExprKind().(*expr.Expr_ConstExpr)
	if !ok {
		return "", fmt.Errorf("timestamp argument must be a constant string")
	}
	s, ok := constExpr.ConstExpr.GetConstantKind().(*expr.Constant_StringValue)
	if !ok {
		return "", fmt.Errorf("timestamp argument must be a string")
	}
	t, err := time.Parse(time.RFC3339Nano, s.StringValue)
	if err != nil {
		return "", fmt.Errorf("invalid timestamp format: %s", s.StringValue)
	}
	return t.UTC().Format(time.RFC3339), nil
}
