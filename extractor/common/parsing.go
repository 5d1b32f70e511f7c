package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date layouts seen in Fidelity history exports. Two-digit years go through
// the standard library's century inference.
var usDateLayouts = []string{"01/02/2006", "01/02/06"}

// ParseDecimal parses a monetary cell into a decimal. The sentinels "" and
// "--" mean "no value" and return nil. Thousands separators and spaces are
// stripped, and a comma decimal separator is normalized to a dot.
func ParseDecimal(text string) (*decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" || cleaned == "--" {
		return nil, nil
	}

	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if strings.Contains(cleaned, ",") && strings.Contains(cleaned, ".") {
		// 1,234.56 style: commas are thousands separators
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	} else {
		// 1234,56 style: comma is the decimal separator
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", text, err)
	}
	return &amount, nil
}

// ParseUSDate parses the first 10 characters of a date cell, trying each
// known layout in order.
func ParseUSDate(text string) (time.Time, error) {
	value := strings.TrimSpace(text)
	if len(value) > 10 {
		value = value[:10]
	}
	for _, layout := range usDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", text)
}
