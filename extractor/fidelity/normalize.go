package fidelity

import (
	"log"
	"strings"

	"github.com/aqlanhadi/fidcsv/extractor/common"
	"github.com/shopspring/decimal"
)

// Header cell names as they appear in Fidelity history exports.
const (
	colRunDate         = "Run Date"
	colAccount         = "Account"
	colAccountNumber   = "Account Number"
	colAction          = "Action"
	colSymbol          = "Symbol"
	colDescription     = "Description"
	colType            = "Type"
	colQuantity        = "Quantity"
	colPrice           = "Price ($)"
	colCommission      = "Commission ($)"
	colFees            = "Fees ($)"
	colAccruedInterest = "Accrued Interest ($)"
	colAmount          = "Amount ($)"
	colCashBalance     = "Cash Balance ($)"
	colSettlementDate  = "Settlement Date"
)

// Two export formats exist; anything past 14 cells is trailing noise.
const maxColumns = 14

// Fixed positional layouts, used when no header row has been seen or when
// the positional strategy is forced. The wide layout inserts the account
// label and number after the run date and carries fees before commission.
var (
	layoutNarrow = map[string]int{
		colRunDate: 0, colAction: 1, colSymbol: 2, colDescription: 3,
		colType: 4, colQuantity: 5, colPrice: 6, colCommission: 7,
		colFees: 8, colAccruedInterest: 9, colAmount: 10,
		colCashBalance: 11, colSettlementDate: 12,
	}
	layoutWide = map[string]int{
		colRunDate: 0, colAccount: 1, colAccountNumber: 2, colAction: 3,
		colSymbol: 4, colDescription: 5, colType: 6, colQuantity: 7,
		colPrice: 8, colFees: 9, colCommission: 10, colAccruedInterest: 11,
		colAmount: 12, colCashBalance: 13,
	}
)

// rowFields is the named bag of cells extracted from one data row. Amount
// is already coerced because zero-amount rows must be dropped before the
// classifier runs; everything else stays raw text.
type rowFields struct {
	RunDate        string
	AccountLabel   string
	AccountNumber  string
	Action         string
	Symbol         string
	Quantity       string
	Price          string
	Fees           string
	CashBalance    string
	SettlementDate string
	Amount         decimal.Decimal
}

type normalizer struct {
	strategy  string
	columnMap map[string]int
}

func newNormalizer(strategy string) *normalizer {
	return &normalizer{strategy: strategy}
}

// Normalize cleans a raw CSV record and extracts its named fields.
// A nil result with nil error means the row produces no transaction
// (header, comment, blank, sentinel or zero-amount row).
func (n *normalizer) Normalize(record []string) (*rowFields, error) {
	cells := make([]string, len(record))
	copy(cells, record)

	if len(cells) > 0 {
		cells[0] = strings.TrimPrefix(cells[0], "\ufeff")
	}
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > maxColumns {
		cells = cells[:maxColumns]
	}

	// BOM-only and blank lines
	if len(cells) == 0 || (len(cells) == 1 && cells[0] == "") {
		return nil, nil
	}

	// header row: capture the column order when allowed
	if cells[0] == colRunDate {
		if n.strategy != StrategyPositional {
			n.captureHeader(cells)
		}
		return nil, nil
	}

	// comment lines
	if strings.HasPrefix(cells[0], `"`) {
		return nil, nil
	}

	// any line not starting with a digit is a disclaimer or stray text
	if cells[0] == "" || cells[0][0] < '0' || cells[0][0] > '9' {
		return nil, nil
	}

	layout := n.columnMap
	if layout == nil {
		switch {
		case len(cells) == len(layoutNarrow):
			layout = layoutNarrow
		case len(cells) == maxColumns:
			layout = layoutWide
		default:
			log.Printf("Warning: skipping row with unsupported column count: %d", len(cells))
			return nil, nil
		}
	}

	cell := func(name string) string {
		idx, ok := layout[name]
		if !ok || idx >= len(cells) {
			return ""
		}
		return cells[idx]
	}

	fields := &rowFields{
		RunDate:        cell(colRunDate),
		AccountLabel:   cell(colAccount),
		AccountNumber:  cell(colAccountNumber),
		Action:         cell(colAction),
		Symbol:         cell(colSymbol),
		Quantity:       cell(colQuantity),
		Price:          cell(colPrice),
		Fees:           cell(colFees),
		CashBalance:    cell(colCashBalance),
		SettlementDate: cell(colSettlementDate),
	}

	if fields.RunDate == "" || fields.Action == "" {
		return nil, nil
	}

	// in-flight rows carry a "Processing" balance and no usable data yet
	if strings.EqualFold(fields.CashBalance, "Processing") {
		return nil, nil
	}

	amount, err := common.ParseDecimal(cell(colAmount))
	if err != nil {
		return nil, err
	}
	if amount == nil || amount.IsZero() {
		return nil, nil
	}
	fields.Amount = *amount

	return fields, nil
}

func (n *normalizer) captureHeader(cells []string) {
	n.columnMap = make(map[string]int, len(cells))
	for idx, name := range cells {
		if name != "" {
			n.columnMap[name] = idx
		}
	}
}
