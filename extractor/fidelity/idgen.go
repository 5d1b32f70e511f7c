package fidelity

import (
	"fmt"
	"time"
)

// IDGenerator produces per-date sequence identifiers of the form
// YYYYMMDD-N, where N counts the transactions already seen for that date.
// Each parse owns its own generator; the assembler uses a fresh one for the
// restamp pass after reversal, otherwise the counters would double up.
// Not safe for concurrent use.
type IDGenerator struct {
	dateCount map[time.Time]int
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{dateCount: make(map[time.Time]int)}
}

// CreateID increments the counter for date and returns the identifier.
func (g *IDGenerator) CreateID(date time.Time) string {
	g.dateCount[date]++
	return fmt.Sprintf("%s-%d", date.Format("20060102"), g.dateCount[date])
}
