package parser

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2026, 10, 17, 18, 45, 0, 0, time.UTC)

func TestParseDateBound(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *time.Time
	}{
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"iso", "2026-10-01", date(2026, 10, 1)},
		{"iso single digits", "2026-3-7", date(2026, 3, 7)},
		{"slash", "01/10/2026", date(2026, 10, 1)},
		{"leap day", "29/02/2028", date(2028, 2, 29)},
		{"today", "Today", date(2026, 10, 17)},
		{"yesterday", "yesterday", date(2026, 10, 16)},
		{"days ago", "30 days ago", date(2026, 9, 17)},
		{"one day ago", "1 day ago", date(2026, 10, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateBound(tt.input, now)
			if err != nil {
				t.Fatalf("ParseDateBound(%q) error = %v", tt.input, err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ParseDateBound(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil || !got.Equal(*tt.want) {
				t.Fatalf("ParseDateBound(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateBoundInvalid(t *testing.T) {
	inputs := []string{
		"tomorrow-ish",
		"2026-13-01",
		"2026-02-30",
		"31/04/2026",
		"29/02/2027",
		"10/2026",
		"abc days ago",
		"99999 days ago",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := ParseDateBound(input, now)
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("ParseDateBound(%q) error = %v, want ErrInvalidDate", input, err)
			}
			if got != nil {
				t.Fatalf("ParseDateBound(%q) = %v, want nil", input, got)
			}
		})
	}
}

func TestParseDateOrToday(t *testing.T) {
	got, err := ParseDateOrToday("", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(*date(2026, 10, 17)) {
		t.Fatalf("expected today, got %v", got)
	}

	if _, err := ParseDateOrToday("not a date", now); err == nil {
		t.Fatal("expected error")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(*date(2026, 1, 5)); got != "2026-01-05" {
		t.Fatalf("FormatDate() = %q", got)
	}
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
