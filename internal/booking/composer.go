package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Months is the fixed ordered month list offered by the date picker.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Periods for the 12-hour clock.
const (
	PeriodAM = "AM"
	PeriodPM = "PM"
)

// DateTimeForm holds the six constituent fields of the visit date and time.
// Numeric fields apply input masking on every write: non-digits are
// stripped, and a result outside the allowed range leaves the previous
// value untouched, so rejection happens keystroke by keystroke rather than
// at the end.
type DateTimeForm struct {
	day    string
	month  string
	year   int
	hour   string
	minute string
	period string
}

// NewDateTimeForm initializes the form for the given session start time:
// month defaults to the current calendar month, the year is fixed for the
// whole session, and the period starts at AM.
func NewDateTimeForm(now time.Time) DateTimeForm {
	return DateTimeForm{
		month:  Months[now.Month()-1],
		year:   now.Year(),
		period: PeriodAM,
	}
}

// SetDay applies the day input mask: digits only, empty or [1, 31]. There
// is deliberately no month-length validation.
func (f *DateTimeForm) SetDay(input string) {
	f.day = maskedNumeric(input, f.day, 1, 31)
}

// SetMonth selects a month from the fixed list.
func (f *DateTimeForm) SetMonth(name string) error {
	for _, m := range Months {
		if m == name {
			f.month = name
			return nil
		}
	}
	return fmt.Errorf("booking: unknown month %q", name)
}

// SetHour applies the hour input mask: digits only, empty or [1, 12].
func (f *DateTimeForm) SetHour(input string) {
	f.hour = maskedNumeric(input, f.hour, 1, 12)
}

// SetMinute applies the minute input mask: digits only, empty or [0, 59].
func (f *DateTimeForm) SetMinute(input string) {
	f.minute = maskedNumeric(input, f.minute, 0, 59)
}

// SetPeriod selects AM or PM.
func (f *DateTimeForm) SetPeriod(period string) error {
	if period != PeriodAM && period != PeriodPM {
		return fmt.Errorf("booking: period must be AM or PM, got %q", period)
	}
	f.period = period
	return nil
}

// Day returns the current day field.
func (f *DateTimeForm) Day() string { return f.day }

// Month returns the current month field.
func (f *DateTimeForm) Month() string { return f.month }

// Year returns the session-fixed year.
func (f *DateTimeForm) Year() int { return f.year }

// Hour returns the current hour field.
func (f *DateTimeForm) Hour() string { return f.hour }

// Minute returns the current minute field, unpadded while being typed.
func (f *DateTimeForm) Minute() string { return f.minute }

// Period returns AM or PM.
func (f *DateTimeForm) Period() string { return f.period }

// ComposedDate returns "<Month> <Day>, <Year>", or "" while any constituent
// is still empty.
func (f *DateTimeForm) ComposedDate() string {
	if f.day == "" || f.month == "" {
		return ""
	}
	return fmt.Sprintf("%s %s, %d", f.month, f.day, f.year)
}

// ComposedTime returns "<Hour>:<PaddedMinute> <Period>", or "" while any
// constituent is still empty. Single-digit minutes are zero-padded here and
// only here.
func (f *DateTimeForm) ComposedTime() string {
	if f.hour == "" || f.minute == "" {
		return ""
	}
	minute := f.minute
	if len(minute) == 1 {
		minute = "0" + minute
	}
	return fmt.Sprintf("%s:%s %s", f.hour, minute, f.period)
}

// Complete reports whether both composed strings are available.
func (f *DateTimeForm) Complete() bool {
	return f.ComposedDate() != "" && f.ComposedTime() != ""
}

// maskedNumeric strips non-digits from input and returns it when empty or
// when its integer value lies in [min, max]; otherwise the previous value
// is kept.
func maskedNumeric(input, previous string, min, max int) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)

	if digits == "" {
		return digits
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return previous
	}
	if value < min || value > max {
		return previous
	}
	return digits
}
