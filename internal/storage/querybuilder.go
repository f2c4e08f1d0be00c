package storage

import "strings"

// queryBuilder accumulates SQL text and its bound arguments so optional
// clauses can be appended in a fixed order without a query path per
// filter combination. Values are always bound, never interpolated.
type queryBuilder struct {
	sql  strings.Builder
	args []any
}

func newQueryBuilder(base string) *queryBuilder {
	qb := &queryBuilder{}
	qb.sql.WriteString(base)
	return qb
}

// push appends literal SQL text.
func (qb *queryBuilder) push(clause string) *queryBuilder {
	qb.sql.WriteString(clause)
	return qb
}

// pushBind appends SQL text containing exactly one placeholder together
// with its argument.
func (qb *queryBuilder) pushBind(clause string, arg any) *queryBuilder {
	qb.sql.WriteString(clause)
	qb.args = append(qb.args, arg)
	return qb
}

func (qb *queryBuilder) query() (string, []any) {
	return qb.sql.String(), qb.args
}
