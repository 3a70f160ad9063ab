package books

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

var baseQuery = goqu.Dialect("postgres").
	From(goqu.T("book").As("b")).
	Select(
		goqu.C("title").Table("b").As("book_title"),
		goqu.C("name").Table("a").As("author_name"),
	).
	InnerJoin(goqu.T("author").As("a"), goqu.On(
		goqu.C("id").Table("a").
			Eq(goqu.C("author_id").Table("b")),
	))

// predicates, in application order. Each returns its condition and whether
// the filter is present at all: absent filters (nil/empty author ids, empty
// search) contribute nothing.
var predicates = []func(f Filter) (exp.Expression, bool){
	func(f Filter) (exp.Expression, bool) {
		if len(f.AuthorIds) == 0 {
			return nil, false
		}
		return goqu.C("id").Table("a").In(f.AuthorIds), true
	},
	func(f Filter) (exp.Expression, bool) {
		if f.Search == "" {
			return nil, false
		}
		// wildcards live in the SQL text, the raw term is bound
		return goqu.L("b.title ILIKE '%' || ? || '%'", f.Search), true
	},
}

// buildQuery produces the parameterized select for the given filter.
// Every filter value travels as a bound parameter, never interpolated into
// the SQL text. Pure: identical filters yield identical (sql, params).
func buildQuery(f Filter) (string, []any, error) {
	qb := baseQuery

	conds := make([]exp.Expression, 0, len(predicates))
	for _, p := range predicates {
		if cond, ok := p(f); ok {
			conds = append(conds, cond)
		}
	}

	if len(conds) > 0 {
		qb = qb.Where(conds...)
	}

	qb = qb.Order(goqu.C("title").Table("b").Asc())

	if f.Limit > 0 {
		qb = qb.Limit(uint(f.Limit))
	}

	return qb.Prepared(true).ToSQL()
}
