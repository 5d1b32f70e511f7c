package postgres

import (
	"context"
	"fmt"

	"github.com/aqlanhadi/fidcsv/extractor/common"
	"github.com/jackc/pgx/v5"
)

// CreateTransactions bulk inserts transactions for a statement. The
// per-date sequence id from the extractor is stored as the reference, so
// re-imports of the same export collide on (statement_id, reference).
func (db *DB) CreateTransactions(ctx context.Context, statementID string, transactions []common.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, tx := range transactions {
		batch.Queue(`
			INSERT INTO transactions (
				statement_id, reference, sequence, date, user_date, memo,
				kind, sub_kind, security_id, units, unit_price, fees, amount
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			statementID, tx.ID, tx.Sequence, tx.Date, tx.UserDate, tx.Memo,
			tx.Kind, tx.SubKind, tx.SecurityID, tx.Units, tx.UnitPrice, tx.Fees, tx.Amount,
		)
	}

	br := db.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for range transactions {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	return nil
}
