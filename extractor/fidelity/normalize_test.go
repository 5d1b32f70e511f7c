package fidelity

import (
	"testing"
)

// narrowRow builds a 13-cell row in the layout without account columns.
func narrowRow(runDate, action, symbol, quantity, price, fees, amount, cashBalance, settlement string) []string {
	return []string{
		runDate, action, symbol, "description", "Cash",
		quantity, price, "", fees, "", amount, cashBalance, settlement,
	}
}

func TestNormalize_BlankAndBOMRows(t *testing.T) {
	n := newNormalizer(StrategyHeader)

	for _, record := range [][]string{
		{},
		{""},
		{"\ufeff"},
	} {
		fields, err := n.Normalize(record)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if fields != nil {
			t.Errorf("Expected blank row %v to be skipped", record)
		}
	}
}

func TestNormalize_HeaderRowSkippedAndCaptured(t *testing.T) {
	n := newNormalizer(StrategyHeader)

	fields, err := n.Normalize([]string{"Run Date", "Action", "Symbol", "Amount ($)", "Cash Balance ($)"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fields != nil {
		t.Fatal("Expected header row to produce no fields")
	}
	if n.columnMap == nil {
		t.Fatal("Expected header row to be captured")
	}
	if n.columnMap["Amount ($)"] != 3 {
		t.Errorf("Expected Amount column at index 3, got %d", n.columnMap["Amount ($)"])
	}

	// subsequent rows resolve through the captured map, missing columns tolerated
	fields, err = n.Normalize([]string{"07/10/2025", "DIRECT DEPOSIT PAYROLL", "", "250.00", "1250.00"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fields == nil {
		t.Fatal("Expected data row to produce fields")
	}
	if fields.Action != "DIRECT DEPOSIT PAYROLL" {
		t.Errorf("Unexpected action: %q", fields.Action)
	}
	if fields.Amount.String() != "250" {
		t.Errorf("Expected amount 250, got %s", fields.Amount.String())
	}
}

func TestNormalize_PositionalStrategyIgnoresHeaderCapture(t *testing.T) {
	n := newNormalizer(StrategyPositional)

	if _, err := n.Normalize([]string{"Run Date", "Action", "Amount ($)"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n.columnMap != nil {
		t.Error("Positional strategy must not capture a header map")
	}
}

func TestNormalize_CommentAndNonDigitRows(t *testing.T) {
	n := newNormalizer(StrategyHeader)

	for _, record := range [][]string{
		narrowRow(`"Brokerage services provided by`, "", "", "", "", "", "", "", ""),
		narrowRow("The data above is for information only", "X", "", "", "", "", "1.00", "", ""),
	} {
		fields, err := n.Normalize(record)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if fields != nil {
			t.Errorf("Expected row %v to be skipped", record[0])
		}
	}
}

func TestNormalize_ZeroOrAbsentAmountRows(t *testing.T) {
	n := newNormalizer(StrategyHeader)

	for _, amount := range []string{"", "--", "0", "0.00"} {
		record := narrowRow("07/10/2025", "JOURNALED SOMETHING", "", "", "", "", amount, "100.00", "")
		fields, err := n.Normalize(record)
		if err != nil {
			t.Fatalf("Unexpected error for amount %q: %v", amount, err)
		}
		if fields != nil {
			t.Errorf("Expected amount %q to filter the row", amount)
		}
	}
}

func TestNormalize_ProcessingBalanceSkipsRow(t *testing.T) {
	n := newNormalizer(StrategyHeader)

	for _, sentinel := range []string{"Processing", "PROCESSING", "processing"} {
		record := narrowRow("07/10/2025", "YOU BOUGHT TEST (Cash)", "TEST", "1", "10", "", "-10.00", sentinel, "")
		fields, err := n.Normalize(record)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if fields != nil {
			t.Errorf("Expected %q cash balance to skip the row", sentinel)
		}
	}
}

func TestNormalize_NarrowLayout(t *testing.T) {
	n := newNormalizer(StrategyHeader)

	record := narrowRow("07/10/2025", "YOU SOLD TEST (Cash)", "TEST", "-2", "5.25", "0.02", "10.48", "110.48", "07/12/2025")
	fields, err := n.Normalize(record)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fields == nil {
		t.Fatal("Expected fields")
	}
	if fields.Symbol != "TEST" || fields.Quantity != "-2" || fields.Price != "5.25" {
		t.Errorf("Unexpected trade fields: %+v", fields)
	}
	if fields.SettlementDate != "07/12/2025" {
		t.Errorf("Unexpected settlement date: %q", fields.SettlementDate)
	}
	if fields.AccountNumber != "" {
		t.Errorf("Narrow layout has no account number, got %q", fields.AccountNumber)
	}
}

func TestNormalize_WideLayoutWithTrailingColumns(t *testing.T) {
	n := newNormalizer(StrategyHeader)

	// 14-cell layout: account label and number follow the run date, extra
	// trailing cells are discarded
	record := []string{
		"07/10/2025", "Individual", "X12345678", "DIRECT DEBIT RENT", "", "",
		"Cash", "", "", "", "", "", "-900.00", "100.00", "", "",
	}
	fields, err := n.Normalize(record)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fields == nil {
		t.Fatal("Expected fields")
	}
	if fields.AccountNumber != "X12345678" {
		t.Errorf("Expected account number X12345678, got %q", fields.AccountNumber)
	}
	if fields.Amount.String() != "-900" {
		t.Errorf("Expected amount -900, got %s", fields.Amount.String())
	}
	if fields.CashBalance != "100.00" {
		t.Errorf("Expected cash balance 100.00, got %q", fields.CashBalance)
	}
}

func TestNormalize_UnsupportedColumnCount(t *testing.T) {
	n := newNormalizer(StrategyHeader)

	fields, err := n.Normalize([]string{"07/10/2025", "DIRECT DEBIT RENT", "-900.00"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fields != nil {
		t.Error("Expected 3-cell row without a header map to be skipped")
	}
}

func TestNormalize_BadAmountIsError(t *testing.T) {
	n := newNormalizer(StrategyHeader)

	record := narrowRow("07/10/2025", "DIRECT DEBIT RENT", "", "", "", "", "not-a-number", "100.00", "")
	if _, err := n.Normalize(record); err == nil {
		t.Error("Expected a coercion error for a garbage amount")
	}
}
