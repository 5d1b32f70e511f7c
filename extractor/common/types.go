package common

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds assigned by the classifier.
const (
	KindBuy      = "BUYSTOCK"
	KindSell     = "SELLSTOCK"
	KindIncome   = "INCOME"
	KindExpense  = "INVEXPENSE"
	KindBankTran = "INVBANKTRAN"
)

// Sub-kinds refining a transaction kind.
const (
	SubKindBuy    = "BUY"
	SubKindSell   = "SELL"
	SubKindDiv    = "DIV"
	SubKindInt    = "INT"
	SubKindDebit  = "DEBIT"
	SubKindCredit = "CREDIT"
	SubKindXfer   = "XFER"
	SubKindOther  = "OTHER"
)

type Statement struct {
	Source       string           `json:"source"`
	BrokerID     string           `json:"broker_id"`
	Currency     string           `json:"currency"`
	AccountID    string           `json:"account_id,omitempty"`
	Transactions []Transaction    `json:"transactions"`
	StartDate    time.Time        `json:"start_date,omitempty"`
	EndDate      time.Time        `json:"end_date,omitempty"`
	EndBalance   *decimal.Decimal `json:"end_balance,omitempty"`
	TotalCredit  decimal.Decimal  `json:"total_credit"`
	TotalDebit   decimal.Decimal  `json:"total_debit"`
	Nett         decimal.Decimal  `json:"nett"`
}

// Transaction is one normalized statement line. Units, UnitPrice and Fees
// are nil when the source row carried no value for them.
type Transaction struct {
	ID         string           `json:"id"`
	Sequence   int              `json:"sequence"`
	Date       time.Time        `json:"date"`
	UserDate   time.Time        `json:"user_date"`
	Memo       string           `json:"memo"`
	Kind       string           `json:"kind"`
	SubKind    string           `json:"sub_kind,omitempty"`
	SecurityID string           `json:"security_id,omitempty"`
	Units      *decimal.Decimal `json:"units,omitempty"`
	UnitPrice  *decimal.Decimal `json:"unit_price,omitempty"`
	Fees       *decimal.Decimal `json:"fees,omitempty"`
	Amount     decimal.Decimal  `json:"amount"`
}
