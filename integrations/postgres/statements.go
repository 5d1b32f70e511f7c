package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/aqlanhadi/fidcsv/extractor/common"
)

// StatementExists checks if a statement already exists using the natural
// key (account_id, end_date)
func (db *DB) StatementExists(ctx context.Context, accountID string, endDate time.Time) (bool, string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM statements
		WHERE account_id = $1 AND end_date = $2
	`, accountID, endDate).Scan(&id)

	if err != nil {
		if err.Error() == "no rows in result set" {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check statement: %w", err)
	}

	return true, id, nil
}

// CreateStatement inserts a new statement
func (db *DB) CreateStatement(ctx context.Context, accountID string, stmt common.Statement) (string, error) {
	var id string

	var startDate, endDate *time.Time
	if !stmt.StartDate.IsZero() {
		startDate = &stmt.StartDate
	}
	if !stmt.EndDate.IsZero() {
		endDate = &stmt.EndDate
	}

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO statements (
			account_id, source, start_date, end_date,
			end_balance, total_credit, total_debit, nett
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		accountID, stmt.Source, startDate, endDate,
		stmt.EndBalance, stmt.TotalCredit, stmt.TotalDebit, stmt.Nett,
	).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create statement: %w", err)
	}

	return id, nil
}

// DeleteStatement removes a statement and its transactions (cascade)
func (db *DB) DeleteStatement(ctx context.Context, statementID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM statements WHERE id = $1`, statementID)
	if err != nil {
		return fmt.Errorf("failed to delete statement: %w", err)
	}
	return nil
}
