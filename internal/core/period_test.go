package core

import (
	"errors"
	"testing"
)

func TestResolvePeriod(t *testing.T) {
	cases := []struct {
		in    string
		month int
		year  int
		ok    bool
	}{
		{"", 0, 0, true},
		{"all", 0, 0, true},
		{" all ", 0, 0, true},
		{"2024-01", 1, 2024, true},
		{"2024-12", 12, 2024, true},
		{"2024-13", 0, 0, false},
		{"2024-00", 0, 0, false},
		{"2024", 0, 0, false},
		{"abcd-ef", 0, 0, false},
		{"0-5", 0, 0, false},
	}
	for _, tc := range cases {
		p, err := ResolvePeriod(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q: unexpected error %v", tc.in, err)
			}
			if p.Month != tc.month || p.Year != tc.year {
				t.Fatalf("%q: got %d-%d, want %d-%d", tc.in, p.Year, p.Month, tc.year, tc.month)
			}
		} else {
			if !errors.Is(err, ErrInvalidPeriod) {
				t.Fatalf("%q: expected ErrInvalidPeriod, got %v", tc.in, err)
			}
		}
	}
}

func TestPeriodRange(t *testing.T) {
	cases := []struct {
		month, year int
		start, end  string
	}{
		{1, 2024, "2024-01-01", "2024-01-31"},
		{2, 2024, "2024-02-01", "2024-02-29"}, // leap year
		{2, 2023, "2023-02-01", "2023-02-28"},
		{4, 2024, "2024-04-01", "2024-04-30"},
		{12, 2024, "2024-12-01", "2024-12-31"},
	}
	for _, tc := range cases {
		p := Period{Month: tc.month, Year: tc.year}
		start, end := p.Range()
		if start.ISO() != tc.start || end.ISO() != tc.end {
			t.Fatalf("%v: got [%s, %s], want [%s, %s]", p, start.ISO(), end.ISO(), tc.start, tc.end)
		}
	}
}

func TestPeriodString(t *testing.T) {
	if got := (Period{}).String(); got != "all" {
		t.Fatalf("expected all, got %q", got)
	}
	if got := (Period{Month: 3, Year: 2024}).String(); got != "2024-03" {
		t.Fatalf("expected 2024-03, got %q", got)
	}
}
