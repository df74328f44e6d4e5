// Package filter builds and parses CMS filter strings.
//
// The CMS grammar is field[operator]value, with conditions joined by [and].
// Parse reads that grammar back into conditions. ParseAIP translates an
// AIP-160 expression into it.
package filter

import (
	"fmt"
	"strings"
)

// Operator is a CMS filter operator.
type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not_equals"
	OpContains    Operator = "contains"
	OpLessThan    Operator = "less_than"
	OpGreaterThan Operator = "greater_than"
	OpExists      Operator = "exists"
	OpNotExists   Operator = "not_exists"
)

const andSeparator = "[and]"

var knownOperators = map[Operator]bool{
	OpEquals:      true,
	OpNotEquals:   true,
	OpContains:    true,
	OpLessThan:    true,
	OpGreaterThan: true,
	OpExists:      true,
	OpNotExists:   true,
}

// Condition is one field[operator]value clause.
type Condition struct {
	Field    string
	Operator Operator
	Value    string
}

// String renders c in the CMS grammar.
func (c Condition) String() string {
	return c.Field + "[" + string(c.Operator) + "]" + c.Value
}

// Contains matches records whose field contains value.
func Contains(field, value string) string {
	return Condition{Field: field, Operator: OpContains, Value: value}.String()
}

// Equals matches records whose field equals value.
func Equals(field, value string) string {
	return Condition{Field: field, Operator: OpEquals, Value: value}.String()
}

// NotEquals matches records whose field differs from value.
func NotEquals(field, value string) string {
	return Condition{Field: field, Operator: OpNotEquals, Value: value}.String()
}

// Exists matches records where field is set.
func Exists(field string) string {
	return Condition{Field: field, Operator: OpExists}.String()
}

// And joins non-empty filter strings with [and].
func And(filters ...string) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, andSeparator)
}

// Parse splits a CMS filter string into conditions.
// An empty string yields no conditions.
func Parse(filters string) ([]Condition, error) {
	filters = strings.TrimSpace(filters)
	if filters == "" {
		return nil, nil
	}
	var out []Condition
	for _, part := range strings.Split(filters, andSeparator) {
		cond, err := parseCondition(part)
		if err != nil {
			return nil, err
		}
		out = append(out, cond)
	}
	return out, nil
}

func parseCondition(part string) (Condition, error) {
	open := strings.Index(part, "[")
	if open <= 0 {
		return Condition{}, fmt.Errorf("filter %q: missing field operator", part)
	}
	closing := strings.Index(part[open:], "]")
	if closing == -1 {
		return Condition{}, fmt.Errorf("filter %q: unterminated operator", part)
	}
	op := Operator(part[open+1 : open+closing])
	if !knownOperators[op] {
		return Condition{}, fmt.Errorf("filter %q: unknown operator %q", part, op)
	}
	cond := Condition{
		Field:    strings.TrimSpace(part[:open]),
		Operator: op,
		Value:    part[open+closing+1:],
	}
	if cond.Value == "" && op != OpExists && op != OpNotExists {
		return Condition{}, fmt.Errorf("filter %q: value is required", part)
	}
	return cond, nil
}
