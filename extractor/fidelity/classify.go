package fidelity

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/aqlanhadi/fidcsv/extractor/common"
)

// ErrUnrecognizedAction is returned under the strict fallback policy when
// an action matches no classification rule.
var ErrUnrecognizedAction = errors.New("unrecognized action")

// Reinvestments into the core cash position are bookkeeping noise and must
// be rejected before the general reinvestment rule gets a chance to match.
var reinvestCashPattern = regexp.MustCompile(`^REINVESTMENT .*Cash`)

// actionRule maps an action-text predicate to its classification effect.
// Rules are evaluated in order, first match wins, so specific patterns must
// stay ahead of the general ones they would otherwise be shadowed by.
type actionRule struct {
	matches func(action string) bool
	apply   func(tx *common.Transaction)
	discard bool
}

func hasPrefix(prefix string) func(string) bool {
	return func(action string) bool { return strings.HasPrefix(action, prefix) }
}

func isExactly(text string) func(string) bool {
	return func(action string) bool { return action == text }
}

func setKind(kind, subKind string) func(tx *common.Transaction) {
	return func(tx *common.Transaction) {
		tx.Kind = kind
		tx.SubKind = subKind
	}
}

var actionRules = []actionRule{
	{matches: reinvestCashPattern.MatchString, discard: true},
	{matches: hasPrefix("REINVESTMENT "), apply: setKind(common.KindBuy, common.SubKindBuy)},
	{matches: hasPrefix("DIVIDEND RECEIVED "), apply: setKind(common.KindIncome, common.SubKindDiv)},
	{matches: hasPrefix("YOU BOUGHT "), apply: setKind(common.KindBuy, common.SubKindBuy)},
	{matches: hasPrefix("YOU SOLD "), apply: setKind(common.KindSell, common.SubKindSell)},
	{matches: hasPrefix("TAX WITHHELD "), apply: func(tx *common.Transaction) {
		// withholding against a holding is an investment expense,
		// otherwise it is a plain cash debit
		if tx.SecurityID != "" {
			tx.Kind = common.KindExpense
			tx.SubKind = ""
		} else {
			tx.Kind = common.KindBankTran
			tx.SubKind = common.SubKindDebit
		}
	}},
	{matches: hasPrefix("INTEREST EARNED "), apply: setKind(common.KindBankTran, common.SubKindInt)},
	{matches: hasPrefix("DIRECT DEBIT "), apply: setKind(common.KindBankTran, common.SubKindDebit)},
	{matches: hasPrefix("Electronic Funds Transfer Paid "), apply: setKind(common.KindBankTran, common.SubKindDebit)},
	{matches: hasPrefix("Check Paid"), apply: setKind(common.KindBankTran, common.SubKindDebit)},
	{matches: hasPrefix("DEBIT CARD PURCHASE"), apply: setKind(common.KindBankTran, common.SubKindDebit)},
	{matches: hasPrefix("REDEMPTION FROM CORE ACCOUNT"), apply: setKind(common.KindSell, common.SubKindSell)},
	{matches: hasPrefix("TRANSFERRED FROM "), apply: setKind(common.KindBankTran, common.SubKindXfer)},
	{matches: hasPrefix("DIRECT DEPOSIT "), apply: setKind(common.KindBankTran, common.SubKindCredit)},
	{matches: isExactly("Contributions"), apply: setKind(common.KindBankTran, common.SubKindCredit)},
	{matches: hasPrefix("WIRE TRANSFER FROM "), apply: setKind(common.KindBankTran, common.SubKindXfer)},
	{matches: hasPrefix("WIRE TRANSFER TO "), apply: setKind(common.KindBankTran, common.SubKindXfer)},
	{matches: hasPrefix("Electronic Funds Transfer Received"), apply: setKind(common.KindBankTran, common.SubKindCredit)},
	{matches: hasPrefix("TRANSFER OF ASSETS ACAT RECEIVE"), apply: setKind(common.KindBankTran, common.SubKindXfer)},
	{matches: hasPrefix("TRANSFER OF ASSETS ACAT DELIVER"), apply: setKind(common.KindBankTran, common.SubKindXfer)},
	{matches: hasPrefix("TRANSFERRED TO "), apply: setKind(common.KindBankTran, common.SubKindXfer)},
	{matches: hasPrefix("JOURNALED"), apply: setKind(common.KindBankTran, common.SubKindOther)},
}

// classify assigns a kind and sub-kind to the transaction based on its memo
// text. The returned keep flag is false for discarded rows. Under the
// lenient policy an unmatched action is guessed from the amount's sign and
// logged; under the strict policy it is an error.
func classify(tx *common.Transaction, policy string) (keep bool, err error) {
	for _, rule := range actionRules {
		if !rule.matches(tx.Memo) {
			continue
		}
		if rule.discard {
			return false, nil
		}
		rule.apply(tx)
		return true, nil
	}

	if policy == PolicyStrict {
		return false, fmt.Errorf("%w: %q", ErrUnrecognizedAction, tx.Memo)
	}

	tx.Kind = common.KindBankTran
	if tx.Amount.IsNegative() {
		tx.SubKind = common.SubKindDebit
	} else {
		tx.SubKind = common.SubKindCredit
	}
	log.Printf("Warning: unknown action %q, guessing %s/%s", tx.Memo, tx.Kind, tx.SubKind)
	return true, nil
}
