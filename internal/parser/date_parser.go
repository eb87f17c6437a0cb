package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/tabletop/internal/models"
)

// ErrInvalidDate is returned for input that is not one of the supported date formats
var ErrInvalidDate = errors.New("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, yesterday or X days ago")

// DateLayout is the layout dates are printed in
const DateLayout = "2006-01-02"

var (
	isoDateRegex      = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashDateRegex    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeDaysRegex = regexp.MustCompile(`^(\d+)\s+(day|days)\s+ago$`)
)

// ParseDateBound parses one side of a date range.
// Empty input means "no bound" and returns nil without error.
// Supported formats:
// - yyyy-mm-dd (e.g., "2026-10-01")
// - dd/mm/yyyy (e.g., "01/10/2026")
// - today, yesterday
// - X days ago (e.g., "30 days ago")
func ParseDateBound(input string, now time.Time) (*time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, nil
	}

	switch input {
	case "today":
		d := models.Day(now)
		return &d, nil
	case "yesterday":
		d := models.DaysAgo(now, 1)
		return &d, nil
	}

	if matches := isoDateRegex.FindStringSubmatch(input); matches != nil {
		return buildDate(matches[1], matches[2], matches[3])
	}

	if matches := slashDateRegex.FindStringSubmatch(input); matches != nil {
		return buildDate(matches[3], matches[2], matches[1])
	}

	if matches := relativeDaysRegex.FindStringSubmatch(input); matches != nil {
		days, err := strconv.Atoi(matches[1])
		if err != nil || days > 36500 {
			return nil, fmt.Errorf("%w: days must be between 0 and 36500", ErrInvalidDate)
		}
		d := models.DaysAgo(now, days)
		return &d, nil
	}

	return nil, ErrInvalidDate
}

// buildDate validates calendar components and returns midnight UTC of that day
func buildDate(yearStr, monthStr, dayStr string) (*time.Time, error) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidDate)
	}
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("%w: day must be between 1 and 31", ErrInvalidDate)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return nil, fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidDate, year, month, day)
	}

	return &date, nil
}

// ParseDateOrToday parses a single date, falling back to today for empty input
func ParseDateOrToday(input string, now time.Time) (time.Time, error) {
	d, err := ParseDateBound(input, now)
	if err != nil {
		return time.Time{}, err
	}
	if d == nil {
		return models.Day(now), nil
	}
	return *d, nil
}

// FormatDate formats a calendar date for display
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
