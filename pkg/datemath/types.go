package datemath

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ISOLayout is the wire and storage format of a calendar date.
const ISOLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a civil calendar date with no time-of-day and no time zone.
// The zero value is not a valid date; use IsZero to detect it.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes y/m/d the same way time.Date does (e.g. Jan 32 -> Feb 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// midnightUTC anchors the date so day differences are exact multiples of 24h.
func (d Date) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns d shifted by n calendar days; n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnightUTC().AddDate(0, 0, n))
}

// AddMonths returns d shifted by n calendar months with time.AddDate normalization.
func (d Date) AddMonths(n int) Date {
	return DateOf(d.midnightUTC().AddDate(0, n, 0))
}

// DaysUntil returns the number of calendar days from d to other (other - d).
func (d Date) DaysUntil(other Date) int {
	return int(other.midnightUTC().Sub(d.midnightUTC()).Hours() / 24)
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// Compare returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d Date) Weekday() time.Weekday {
	return d.midnightUTC().Weekday()
}

// StartOfWeek returns the Sunday on or before d.
func (d Date) StartOfWeek() Date {
	return d.AddDays(-int(d.Weekday()))
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.midnightUTC().Format(ISOLayout)
}

// Format renders d with a time layout, e.g. "Jan 02, 2006".
func (d Date) Format(layout string) string {
	return d.midnightUTC().Format(layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
