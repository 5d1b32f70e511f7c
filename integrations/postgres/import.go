package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aqlanhadi/fidcsv/extractor"
)

// ImportResult tracks the outcome of an import operation
type ImportResult struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []string
}

// ImportOptions configures the import behavior
type ImportOptions struct {
	Force   bool // Force reprocessing of existing statements
	Verbose bool // Enable verbose logging
}

// ImportFile processes a single CSV export and stores it in the database
// Returns: processed count, skipped count, failed count, error messages
func (db *DB) ImportFile(ctx context.Context, filePath string, opts ImportOptions) (processed int, skipped int, failed int, errors []string) {
	fileName := filepath.Base(filePath)

	f, err := os.Open(filePath)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: failed to open file: %v", fileName, err)}
	}
	defer f.Close()

	statement := extractor.ProcessReader(f, filePath)

	if len(statement.Transactions) == 0 {
		return 0, 0, 1, []string{fmt.Sprintf("%s: no transactions extracted", fileName)}
	}

	// Validate extraction
	if statement.AccountID == "" {
		return 0, 0, 1, []string{fmt.Sprintf("%s: no account id derived", fileName)}
	}
	if statement.EndDate.IsZero() {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: no statement end date", fileName, statement.AccountID)}
	}

	// Get or create account
	accountID, err := db.GetOrCreateAccount(ctx, statement.AccountID, statement.BrokerID, statement.Currency)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: account error: %v", fileName, statement.AccountID, err)}
	}

	// Check if statement exists (natural key: account_id + end_date)
	exists, existingID, err := db.StatementExists(ctx, accountID, statement.EndDate)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: check error: %v", fileName, statement.AccountID, err)}
	}

	if exists && !opts.Force {
		if opts.Verbose {
			log.Printf("SKIP %s [%s] (already exists)", fileName, statement.AccountID)
		}
		return 0, 1, 0, nil
	}

	// If forcing, delete existing statement first
	if exists && opts.Force {
		if err := db.DeleteStatement(ctx, existingID); err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: delete error: %v", fileName, statement.AccountID, err)}
		}
	}

	// Create statement
	statementID, err := db.CreateStatement(ctx, accountID, statement)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: statement error: %v", fileName, statement.AccountID, err)}
	}

	// Create transactions
	if err := db.CreateTransactions(ctx, statementID, statement.Transactions); err != nil {
		// Rollback by deleting the statement
		_ = db.DeleteStatement(ctx, statementID)
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: transactions error: %v", fileName, statement.AccountID, err)}
	}

	if opts.Verbose {
		log.Printf("OK   %s [%s] (%d transactions)", fileName, statement.AccountID, len(statement.Transactions))
	}
	return 1, 0, 0, nil
}

// ImportDirectory processes all CSV files in a directory
func (db *DB) ImportDirectory(ctx context.Context, dirPath string, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	// Filter CSV files
	var dataFiles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			dataFiles = append(dataFiles, filepath.Join(dirPath, e.Name()))
		}
	}

	log.Printf("Scanning: %s", dirPath)
	log.Printf("Found %d CSV files\n", len(dataFiles))

	for _, filePath := range dataFiles {
		processed, skipped, failed, errors := db.ImportFile(ctx, filePath, opts)

		result.Processed += processed
		result.Skipped += skipped
		result.Failed += failed
		result.Errors = append(result.Errors, errors...)

		// Log failures if verbose
		if opts.Verbose && failed > 0 {
			for _, errMsg := range errors {
				log.Printf("FAIL %s", errMsg)
			}
		}
	}

	return result, nil
}

// Import handles both file and directory imports
func (db *DB) Import(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() {
		return db.ImportDirectory(ctx, path, opts)
	}

	// Single file
	result := &ImportResult{}
	processed, skipped, failed, errors := db.ImportFile(ctx, path, opts)

	result.Processed = processed
	result.Skipped = skipped
	result.Failed = failed
	result.Errors = errors

	return result, nil
}
