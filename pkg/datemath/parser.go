package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Relative phrases reach at most ten years ahead.
const (
	maxRelativeDays   = 3650
	maxRelativeMonths = 120
)

// Parser resolves "today" and relative date phrases in a fixed time zone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's time zone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar date of now in the parser's time zone.
func (p *Parser) Today(now time.Time) Date {
	return DateOf(now.In(p.location))
}

// Parse resolves an ISO date or a relative phrase against today.
// Accepted phrases: today, tomorrow, yesterday, "in N days|weeks|months", "next <weekday>".
func (p *Parser) Parse(input string, today Date) (Date, error) {
	relative := strings.ToLower(strings.TrimSpace(input))

	switch relative {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, today)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, today)
	}

	return ParseDate(relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, today Date) (Date, error) {
	matches := durationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return Date{}, fmt.Errorf("%w: invalid duration format %q", ErrInvalidDate, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return Date{}, fmt.Errorf("%w: duration out of range %q", ErrInvalidDate, relative)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		if amount > maxRelativeDays {
			break
		}
		return today.AddDays(amount), nil
	case strings.HasPrefix(unit, "week"):
		if amount > maxRelativeDays/7 {
			break
		}
		return today.AddDays(amount * 7), nil
	default:
		if amount > maxRelativeMonths {
			break
		}
		return today.AddMonths(amount), nil
	}
	return Date{}, fmt.Errorf("%w: duration out of range %q", ErrInvalidDate, relative)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, today Date) (Date, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return Date{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidDate, dayName)
	}

	daysUntil := int(targetWeekday - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return today.AddDays(daysUntil), nil
}
