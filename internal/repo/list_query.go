package repo

import (
	"github.com/angelmondragon/shopinsights-backend/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListQuery is the conjunction of filter predicates plus ordering and paging
// for one list request. The zero value lists everything unordered with the
// default page size.
type ListQuery struct {
	predicates []Predicate
	orderBy    string
	page       pagination.Params
}

func NewListQuery() *ListQuery {
	return &ListQuery{page: pagination.Params{Limit: pagination.DefaultLimit}}
}

// Where adds predicates; nil entries are skipped.
func (q *ListQuery) Where(preds ...Predicate) *ListQuery {
	q.predicates = append(q.predicates, compact(preds)...)
	return q
}

// OrderDesc sorts by column descending. No tie-break column is added, so rows
// sharing a value come back in store order.
func (q *ListQuery) OrderDesc(column string) *ListQuery {
	q.orderBy = column
	return q
}

func (q *ListQuery) Page(p pagination.Params) *ListQuery {
	q.page = pagination.Params{Limit: pagination.NormalizeLimit(p.Limit), Offset: p.Offset}
	return q
}

func (q *ListQuery) Predicates() []Predicate {
	return q.predicates
}

// Apply adds the query's clauses to db. Negative offsets are dropped by GORM,
// which only renders OFFSET for positive values.
func (q *ListQuery) Apply(db *gorm.DB) *gorm.DB {
	if len(q.predicates) > 0 {
		db = db.Clauses(clause.Where{Exprs: q.predicates})
	}
	if q.orderBy != "" {
		db = db.Order(clause.OrderByColumn{Column: col(q.orderBy), Desc: true})
	}
	limit := pagination.NormalizeLimit(q.page.Limit)
	return db.Limit(limit).Offset(q.page.Offset)
}
