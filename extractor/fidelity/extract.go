package fidelity

import (
	"encoding/csv"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/aqlanhadi/fidcsv/extractor/common"
	"github.com/shopspring/decimal"
)

const (
	brokerID = "fidelity.com"
	currency = "USD"
)

// Extract parses a Fidelity history CSV export into a Statement. Rows that
// cannot be parsed are skipped; under the strict fallback policy an
// unrecognized action aborts the whole file instead.
func Extract(reader io.Reader, filename string) (common.Statement, error) {
	cfg := loadConfig()
	startTime := time.Now()
	log.Printf("Starting extraction for FIDELITY statement: %s", filename)

	statement := common.Statement{
		Source:       strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
		BrokerID:     brokerID,
		Currency:     currency,
		Transactions: []common.Transaction{},
	}

	norm := newNormalizer(cfg.ColumnStrategy)
	gen := NewIDGenerator()
	accountNumbers := map[string]struct{}{}
	var endBalance *decimal.Decimal

	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Warning: error reading CSV row: %v", err)
			continue
		}

		fields, err := norm.Normalize(record)
		if err != nil {
			log.Printf("Warning: skipping malformed row: %v", err)
			continue
		}
		if fields == nil {
			continue
		}

		if fields.AccountNumber != "" {
			accountNumbers[fields.AccountNumber] = struct{}{}
		}

		// file order is newest first, so the first parseable balance is
		// the statement's ending balance
		if endBalance == nil {
			if balance, err := common.ParseDecimal(fields.CashBalance); err == nil && balance != nil {
				endBalance = balance
			}
		}

		tx, err := buildTransaction(fields, gen)
		if err != nil {
			log.Printf("Warning: skipping row: %v", err)
			continue
		}

		keep, err := classify(tx, cfg.FallbackPolicy)
		if err != nil {
			return statement, err
		}
		if !keep {
			continue
		}

		statement.Transactions = append(statement.Transactions, *tx)
	}

	finalize(&statement, endBalance)
	deriveAccountID(&statement, filename, accountNumbers, cfg)

	log.Printf("Extracted %d transactions in %v", len(statement.Transactions), time.Since(startTime))
	return statement, nil
}

// buildTransaction coerces the typed fields of a normalized row and stamps
// a provisional id. The id is replaced once the final order is known.
func buildTransaction(fields *rowFields, gen *IDGenerator) (*common.Transaction, error) {
	date, err := common.ParseUSDate(fields.RunDate)
	if err != nil {
		return nil, err
	}

	userDate := date
	if fields.SettlementDate != "" {
		if userDate, err = common.ParseUSDate(fields.SettlementDate); err != nil {
			return nil, err
		}
	}

	tx := &common.Transaction{
		ID:       gen.CreateID(date),
		Date:     date,
		UserDate: userDate,
		Memo:     fields.Action,
		Amount:   fields.Amount,
	}

	if tx.Fees, err = common.ParseDecimal(fields.Fees); err != nil {
		return nil, err
	}
	if tx.Units, err = common.ParseDecimal(fields.Quantity); err != nil {
		return nil, err
	}
	if tx.UnitPrice, err = common.ParseDecimal(fields.Price); err != nil {
		return nil, err
	}
	tx.SecurityID = fields.Symbol

	return tx, nil
}

// finalize reverses the buffer into chronological order, restamps ids with
// a fresh generator and computes the statement aggregates.
func finalize(statement *common.Statement, endBalance *decimal.Decimal) {
	txs := statement.Transactions
	for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
		txs[i], txs[j] = txs[j], txs[i]
	}

	gen := NewIDGenerator()
	for i := range txs {
		txs[i].ID = gen.CreateID(txs[i].Date)
		txs[i].Sequence = i + 1

		if txs[i].Amount.IsNegative() {
			statement.TotalDebit = statement.TotalDebit.Add(txs[i].Amount)
		} else {
			statement.TotalCredit = statement.TotalCredit.Add(txs[i].Amount)
		}

		if i == 0 || txs[i].Date.Before(statement.StartDate) {
			statement.StartDate = txs[i].Date
		}
		if i == 0 || txs[i].Date.After(statement.EndDate) {
			statement.EndDate = txs[i].Date
		}
	}

	statement.Nett = statement.TotalCredit.Add(statement.TotalDebit)
	statement.EndBalance = endBalance
}

// deriveAccountID prefers an account token embedded in the file name, then
// a single account number observed across the rows.
func deriveAccountID(statement *common.Statement, filename string, observed map[string]struct{}, cfg config) {
	if match := cfg.AccountFilePattern.FindStringSubmatch(filepath.Base(filename)); len(match) > 1 && match[1] != "" {
		statement.AccountID = match[1]
		return
	}

	if len(observed) == 1 {
		for number := range observed {
			statement.AccountID = number
		}
		return
	}

	log.Printf("Warning: unable to derive account id from %s, use a filename like xxx_Account_123456789.csv", filename)
}
