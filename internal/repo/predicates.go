package repo

import (
	"strings"

	"gorm.io/gorm/clause"
)

// Predicate is one filter condition of a list query. A nil Predicate means the
// filter is off and is dropped when the query is built.
type Predicate = clause.Expression

// likeEscape is the escape character declared on every LIKE built here.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

func col(name string) clause.Column {
	return clause.Column{Name: name}
}

func Eq(column string, value any) Predicate {
	return clause.Eq{Column: col(column), Value: value}
}

// Gte and Lte are inclusive bounds.
func Gte(column string, value any) Predicate {
	return clause.Gte{Column: col(column), Value: value}
}

func Lte(column string, value any) Predicate {
	return clause.Lte{Column: col(column), Value: value}
}

// Contains matches rows whose column holds needle anywhere. LIKE wildcards in
// needle match literally. Case sensitivity follows the store collation.
func Contains(column, needle string) Predicate {
	if needle == "" {
		return nil
	}
	pattern := "%" + likeEscaper.Replace(needle) + "%"
	return clause.Expr{
		SQL:  "? LIKE ? ESCAPE '" + likeEscape + "'",
		Vars: []any{col(column), pattern},
	}
}

// AnyOf groups predicates with OR. The group joins the outer conjunction as a
// single parenthesized predicate.
func AnyOf(preds ...Predicate) Predicate {
	present := compact(preds)
	switch len(present) {
	case 0:
		return nil
	case 1:
		return present[0]
	default:
		return clause.Or(present...)
	}
}

// Optional returns Eq(column, *value) or nil when value is nil.
func Optional[T any](column string, value *T, build func(string, any) Predicate) Predicate {
	if value == nil {
		return nil
	}
	return build(column, *value)
}

// OptionalString is Optional for string filters, where the empty string means off.
func OptionalString(column, value string, build func(string, any) Predicate) Predicate {
	if value == "" {
		return nil
	}
	return build(column, value)
}

func compact(preds []Predicate) []Predicate {
	out := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
