package booking

import (
	"testing"
	"time"
)

var formNow = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

func TestNewFormDefaults(t *testing.T) {
	f := NewDateTimeForm(formNow)
	if f.Month() != "March" {
		t.Errorf("month should default to the current month, got %s", f.Month())
	}
	if f.Year() != 2026 {
		t.Errorf("year should be fixed to the current year, got %d", f.Year())
	}
	if f.Period() != PeriodAM {
		t.Errorf("period should default to AM, got %s", f.Period())
	}
	if f.Day() != "" || f.Hour() != "" || f.Minute() != "" {
		t.Error("day, hour and minute should start empty")
	}
}

func TestDayMaskKeepsPreviousOnOutOfRange(t *testing.T) {
	f := NewDateTimeForm(formNow)

	f.SetDay("3")
	if f.Day() != "3" {
		t.Fatalf("day = %q, want 3", f.Day())
	}
	// Typing a 2 after 3 would make 32, which is out of range.
	f.SetDay("32")
	if f.Day() != "3" {
		t.Errorf("out-of-range input must keep the previous value, got %q", f.Day())
	}

	f.SetDay("")
	if f.Day() != "" {
		t.Errorf("clearing the field is always allowed, got %q", f.Day())
	}
	f.SetDay("0")
	if f.Day() != "" {
		t.Errorf("zero is below range, previous (empty) must survive, got %q", f.Day())
	}
}

func TestDayMaskStripsNonDigits(t *testing.T) {
	f := NewDateTimeForm(formNow)
	f.SetDay("1a5")
	if f.Day() != "15" {
		t.Errorf("non-digits must be stripped before range check, got %q", f.Day())
	}
}

func TestDayThirtyOneAcceptedForAnyMonth(t *testing.T) {
	f := NewDateTimeForm(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	f.SetDay("31")
	if f.Day() != "31" {
		t.Errorf("day 31 is accepted regardless of month, got %q", f.Day())
	}
}

func TestMinuteMaskKeepsPreviousOnOverflow(t *testing.T) {
	f := NewDateTimeForm(formNow)

	f.SetMinute("6")
	f.SetMinute("60")
	if f.Minute() != "6" {
		t.Errorf("minute 60 is out of range, previous 6 must survive, got %q", f.Minute())
	}

	f.SetMinute("0")
	if f.Minute() != "0" {
		t.Errorf("minute zero is in range, got %q", f.Minute())
	}
}

func TestHourMask(t *testing.T) {
	f := NewDateTimeForm(formNow)

	f.SetHour("0")
	if f.Hour() != "" {
		t.Errorf("hour zero is below range on a 12-hour clock, got %q", f.Hour())
	}
	f.SetHour("9")
	f.SetHour("13")
	if f.Hour() != "9" {
		t.Errorf("hour 13 is out of range, previous 9 must survive, got %q", f.Hour())
	}
}

func TestComposedDate(t *testing.T) {
	f := NewDateTimeForm(formNow)
	if f.ComposedDate() != "" {
		t.Error("composed date must be empty before the day is set")
	}
	f.SetDay("5")
	if got := f.ComposedDate(); got != "March 5, 2026" {
		t.Errorf("composed date = %q, want %q", got, "March 5, 2026")
	}
}

func TestComposedTimePadsSingleDigitMinute(t *testing.T) {
	f := NewDateTimeForm(formNow)
	f.SetHour("9")
	f.SetMinute("5")
	if got := f.ComposedTime(); got != "9:05 AM" {
		t.Errorf("composed time = %q, want %q", got, "9:05 AM")
	}
	// The stored field stays unpadded.
	if f.Minute() != "5" {
		t.Errorf("minute field = %q, want unpadded 5", f.Minute())
	}

	if err := f.SetPeriod(PeriodPM); err != nil {
		t.Fatalf("SetPeriod returned error: %v", err)
	}
	f.SetMinute("30")
	if got := f.ComposedTime(); got != "9:30 PM" {
		t.Errorf("composed time = %q, want %q", got, "9:30 PM")
	}
}

func TestSetMonthRejectsUnknown(t *testing.T) {
	f := NewDateTimeForm(formNow)
	if err := f.SetMonth("Ramadan"); err == nil {
		t.Error("expected error for a month outside the fixed list")
	}
	if f.Month() != "March" {
		t.Errorf("rejected month must not change the field, got %s", f.Month())
	}
	if err := f.SetMonth("December"); err != nil {
		t.Errorf("SetMonth returned error: %v", err)
	}
}
