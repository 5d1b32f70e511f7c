package fidelity

import (
	"testing"
	"time"
)

func TestCreateID_SequencePerDate(t *testing.T) {
	gen := NewIDGenerator()
	day1 := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.July, 11, 0, 0, 0, 0, time.UTC)

	if id := gen.CreateID(day1); id != "20250710-1" {
		t.Errorf("Expected '20250710-1', got '%s'", id)
	}
	if id := gen.CreateID(day1); id != "20250710-2" {
		t.Errorf("Expected '20250710-2', got '%s'", id)
	}
	if id := gen.CreateID(day2); id != "20250711-1" {
		t.Errorf("Expected '20250711-1', got '%s'", id)
	}
	if id := gen.CreateID(day1); id != "20250710-3" {
		t.Errorf("Expected '20250710-3', got '%s'", id)
	}
}

func TestCreateID_FreshGeneratorRestartsCounters(t *testing.T) {
	day := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

	gen := NewIDGenerator()
	gen.CreateID(day)
	gen.CreateID(day)

	// a second generator must not see the first one's counts
	fresh := NewIDGenerator()
	if id := fresh.CreateID(day); id != "20250710-1" {
		t.Errorf("Expected fresh generator to restart at '20250710-1', got '%s'", id)
	}
}
