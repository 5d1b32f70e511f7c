package postgres

import (
	"context"
	"fmt"
)

// GetOrCreateAccount finds an existing account by its derived account id or
// creates a new one
func (db *DB) GetOrCreateAccount(ctx context.Context, accountID, brokerID, currency string) (string, error) {
	var id string

	// Try to find existing account
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM accounts WHERE account_id = $1
	`, accountID).Scan(&id)

	if err == nil {
		// Account exists, refresh broker/currency from the latest extraction
		_, err = db.Pool.Exec(ctx, `
			UPDATE accounts
			SET broker_id = $1,
			    currency = $2,
			    updated_at = NOW()
			WHERE id = $3
		`, brokerID, currency, id)
		if err != nil {
			return "", fmt.Errorf("failed to update account: %w", err)
		}
		return id, nil
	}

	// Create new account
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO accounts (account_id, broker_id, currency)
		VALUES ($1, $2, $3)
		RETURNING id
	`, accountID, brokerID, currency).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	return id, nil
}
