package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-05")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "05-03-2024", "2024-3-5", "2024-03-05T00:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted, want error", bad)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2024, 3, 5, 13, 45, 0, 0, time.UTC)); got != "2024-03-05" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
}

func TestDaysInclusive(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		return d
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2024-03-01", "2024-03-01", 1},
		{"two days", "2024-03-01", "2024-03-02", 2},
		{"full week", "2024-03-01", "2024-03-07", 7},
		{"across month boundary", "2024-02-28", "2024-03-02", 4},
		{"leap day included", "2024-02-28", "2024-02-29", 2},
		{"reversed range", "2024-03-02", "2024-03-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInclusive(day(tt.start), day(tt.end)); got != tt.want {
				t.Errorf("DaysInclusive(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 5, 1, 0, 0, 0, time.UTC)
	night := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	next := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Error("same UTC day reported as different")
	}
	if SameDay(night, next) {
		t.Error("adjacent days reported as same")
	}
}
