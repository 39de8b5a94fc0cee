package actions

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want Month
	}{
		{"2024-01", NewMonth(2024, time.January)},
		{"2024-1", NewMonth(2024, time.January)},
		{" 2025-12 ", NewMonth(2025, time.December)},
	}
	for _, tt := range tests {
		got, err := ParseMonth(tt.in)
		if err != nil {
			t.Fatalf("ParseMonth(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMonth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024", "january 2024", "2024-13"} {
		if _, err := ParseMonth(in); err == nil {
			t.Errorf("ParseMonth(%q) expected an error", in)
		}
	}
}

func TestMonth_String(t *testing.T) {
	if got := NewMonth(2024, time.March).String(); got != "2024-03" {
		t.Errorf("String() = %q, want %q", got, "2024-03")
	}
}

func TestMonth_Compare(t *testing.T) {
	jan := NewMonth(2024, time.January)
	feb := NewMonth(2024, time.February)
	if !jan.Before(feb) || feb.Before(jan) {
		t.Errorf("expected %v before %v", jan, feb)
	}
	if jan.Compare(jan) != 0 {
		t.Errorf("Compare() with itself = %d, want 0", jan.Compare(jan))
	}
}

func TestMonthOf_DisplayTimezone(t *testing.T) {
	// 2024-02-01 02:00 UTC is still January 31st in New York.
	instant := time.Date(2024, time.February, 1, 2, 0, 0, 0, time.UTC)
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	if got := MonthOf(instant, ny); got != NewMonth(2024, time.January) {
		t.Errorf("MonthOf() in New York = %v, want 2024-01", got)
	}
	if got := MonthOf(instant, time.UTC); got != NewMonth(2024, time.February) {
		t.Errorf("MonthOf() in UTC = %v, want 2024-02", got)
	}
}

func TestMonth_IsZero(t *testing.T) {
	var zero Month
	if !zero.IsZero() {
		t.Error("zero Month should report IsZero")
	}
	if NewMonth(2024, time.January).IsZero() {
		t.Error("concrete Month should not report IsZero")
	}
}
