package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier covers the single query method ExistsChecker needs. It is
// satisfied by *pgxpool.Pool as well as individual pgx connections and
// transactions.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ExistsChecker reports whether an attribute value is already present in a
// table, for uniqueness validation. It never writes.
type ExistsChecker struct {
	db      Querier
	queries map[string]string
}

// NewExistsChecker builds a checker over one table. The columns map binds
// record attribute names to table columns; identifiers are sanitized once
// here so the per-check path only binds the value parameter.
func NewExistsChecker(db Querier, table string, columns map[string]string) (*ExistsChecker, error) {
	if table == "" {
		return nil, ErrEmptyTableName
	}

	queries := make(map[string]string, len(columns))
	for attr, col := range columns {
		queries[attr] = fmt.Sprintf(
			"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
			pgx.Identifier{table}.Sanitize(),
			pgx.Identifier{col}.Sanitize(),
		)
	}

	return &ExistsChecker{db: db, queries: queries}, nil
}

// Exists reports whether the attribute's value already exists in the mapped
// column. Attributes without a column mapping are an error, not a silent
// pass.
func (c *ExistsChecker) Exists(ctx context.Context, attribute string, value any) (bool, error) {
	query, ok := c.queries[attribute]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownAttribute, attribute)
	}

	var exists bool
	if err := c.db.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		return false, errors.Join(ErrExistsQueryFailed, err)
	}
	return exists, nil
}
