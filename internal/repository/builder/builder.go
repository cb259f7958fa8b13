package builder

import (
	"strings"

	"github.com/lib/pq"
)

// SQLBuilder constructs read-only SELECT statements over a whole table.
type SQLBuilder struct {
	table   string
	columns []string
	orderBy []string
}

// NewSQLBuilder creates a new instance of SQLBuilder.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{}
}

// QualifiedTable quotes schema and table as identifiers. An empty schema
// yields just the quoted table.
func QualifiedTable(schema, table string) string {
	if schema == "" {
		return pq.QuoteIdentifier(table)
	}
	return pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(table)
}

// Select specifies the columns to retrieve.
func (b *SQLBuilder) Select(cols ...string) *SQLBuilder {
	b.columns = cols
	return b
}

// From specifies the table to select from.
func (b *SQLBuilder) From(table string) *SQLBuilder {
	b.table = table
	return b
}

// OrderBy adds an ORDER BY clause.
func (b *SQLBuilder) OrderBy(order ...string) *SQLBuilder {
	b.orderBy = append(b.orderBy, order...)
	return b
}

// Build constructs the final SQL string.
func (b *SQLBuilder) Build() string {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	if len(b.columns) == 0 {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(b.columns, ", "))
	}
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	return sb.String()
}
