package prefs

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLCollation implements [CollationConnection] over a live backend
// connection. The collation name is interpolated as an identifier, so it is
// validated before use; placeholders are not accepted in a SET statement.
type SQLCollation struct {
	db *sql.DB
}

// NewSQLCollation wraps an open backend connection.
func NewSQLCollation(db *sql.DB) *SQLCollation {
	return &SQLCollation{db: db}
}

// Collation returns the connection's current collation.
func (c *SQLCollation) Collation(ctx context.Context) (string, error) {
	var collation string
	if err := c.db.QueryRowContext(ctx, "SELECT @@collation_connection").Scan(&collation); err != nil {
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}
	return collation, nil
}

// SetCollation switches the connection's collation.
func (c *SQLCollation) SetCollation(ctx context.Context, collation string) error {
	if !validCollationName(collation) {
		return fmt.Errorf("invalid collation name: %q", collation)
	}

	if _, err := c.db.ExecContext(ctx, "SET collation_connection = "+collation); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

// validCollationName accepts identifiers that start with a letter followed
// by letters, digits or underscores.
func validCollationName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_'):
		default:
			return false
		}
	}
	return true
}
