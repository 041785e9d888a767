package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidFilter indicates a filter with an unknown operator or an
// unusable value.
var ErrInvalidFilter = errors.New("invalid filter")

// Filters restrict a query. Keys are a column name optionally followed by
// "__" and an operator: eq, ne, lt, lte, gt, gte, in, is, like or ilike.
// A key without operator means eq.
type Filters map[string]interface{}

// Expressions returns the filters as where clauses, ordered by key.
func (f Filters) Expressions() ([]clause.Expression, error) {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	exprs := make([]clause.Expression, 0, len(keys))
	for _, k := range keys {
		expr, err := filterExpr(k, f[k])
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func (f Filters) apply(db *gorm.DB) (*gorm.DB, error) {
	exprs, err := f.Expressions()
	if err != nil {
		return nil, err
	}
	if len(exprs) == 0 {
		return db, nil
	}
	return db.Clauses(clause.Where{Exprs: exprs}), nil
}

func filterExpr(key string, value interface{}) (clause.Expression, error) {
	field, op := key, "eq"
	if i := strings.LastIndex(key, "__"); i >= 0 {
		field, op = key[:i], key[i+2:]
	}
	if !isColumn(field) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, field)
	}
	col := clause.Column{Name: field}

	switch op {
	case "eq":
		return clause.Eq{Column: col, Value: value}, nil
	case "ne":
		return clause.Neq{Column: col, Value: value}, nil
	case "lt":
		return clause.Lt{Column: col, Value: value}, nil
	case "lte":
		return clause.Lte{Column: col, Value: value}, nil
	case "gt":
		return clause.Gt{Column: col, Value: value}, nil
	case "gte":
		return clause.Gte{Column: col, Value: value}, nil
	case "in":
		return clause.IN{Column: col, Values: listValues(value)}, nil
	case "like":
		return clause.Like{Column: col, Value: value}, nil
	case "ilike":
		return clause.Expr{SQL: "LOWER(?) LIKE LOWER(?)", Vars: []interface{}{col, value}}, nil
	case "is":
		switch v := strings.ToLower(strings.TrimSpace(fmt.Sprint(value))); {
		case value == nil || v == "null" || v == "none":
			return clause.Expr{SQL: "? IS NULL", Vars: []interface{}{col}}, nil
		case v == "not null":
			return clause.Expr{SQL: "? IS NOT NULL", Vars: []interface{}{col}}, nil
		}
		return nil, fmt.Errorf("%w: %s expects null or not null, got %v", ErrInvalidFilter, key, value)
	}
	return nil, fmt.Errorf("%w: unknown operator %q in %s", ErrInvalidFilter, op, key)
}

// listValues accepts a slice or a comma-separated string.
func listValues(value interface{}) []interface{} {
	switch v := value.(type) {
	case []interface{}:
		return v
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case string:
		parts := strings.Split(v, ",")
		out := make([]interface{}, len(parts))
		for i, s := range parts {
			out[i] = strings.TrimSpace(s)
		}
		return out
	}
	return []interface{}{value}
}
