package datetime

import (
	"errors"
	"testing"
	"time"
)

func TestParse_ISODate(t *testing.T) {
	got, err := Parse("2025-3-1", "", WithDefaultTime("09:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_DayFirstDate(t *testing.T) {
	got, err := Parse("15-03-2025", "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_SlashSeparators(t *testing.T) {
	got, err := Parse("1/2/2025", "08:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.February, 1, 8, 5, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_ImpossibleDate(t *testing.T) {
	_, err := Parse("2024-02-31", "", WithDefaultTime("09:00"))
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	_, err = Parse("31-04-2025", "10:00")
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate for 31 April, got %v", err)
	}
}

func TestParse_UnrecognizedDateShape(t *testing.T) {
	for _, d := range []string{"2025/03/01", "15.03.2025", "tomorrow", "03-2025", ""} {
		_, err := Parse(d, "10:00")
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Parse(%q): expected ErrInvalidDate, got %v", d, err)
		}
	}
}

func TestParse_TimeOutOfRange(t *testing.T) {
	_, err := Parse("01-01-2025", "25:00")
	if !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
	_, err = Parse("01-01-2025", "12:60")
	if !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime for minute 60, got %v", err)
	}
}

func TestParse_MalformedTime(t *testing.T) {
	for _, tt := range []string{"7pm", "12h30", "1:2", "12:345"} {
		_, err := Parse("01-01-2025", tt)
		if !errors.Is(err, ErrInvalidTime) {
			t.Errorf("Parse(_, %q): expected ErrInvalidTime, got %v", tt, err)
		}
	}
}

func TestParse_PlaceholderTimeFallsBack(t *testing.T) {
	for _, tt := range []string{"", "--:--", ":", "---", "  "} {
		got, err := Parse("2025-06-10", tt, WithDefaultTime("09:00"))
		if err != nil {
			t.Fatalf("Parse(_, %q): unexpected error: %v", tt, err)
		}
		if got.Hour() != 9 || got.Minute() != 0 {
			t.Errorf("Parse(_, %q) = %v, want 09:00", tt, got)
		}
	}
}

func TestParse_MissingTimeWithoutDefault(t *testing.T) {
	_, err := Parse("2025-06-10", "")
	if !errors.Is(err, ErrMissingTime) {
		t.Errorf("expected ErrMissingTime, got %v", err)
	}
	_, err = Parse("2025-06-10", "--:--")
	if !errors.Is(err, ErrMissingTime) {
		t.Errorf("expected ErrMissingTime for placeholder, got %v", err)
	}
}

func TestParse_LocalWallClock(t *testing.T) {
	got, err := Parse("2025-12-31", "23:59")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location() != time.Local {
		t.Errorf("expected local location, got %v", got.Location())
	}
	if got.Year() != 2025 || got.Month() != time.December || got.Day() != 31 ||
		got.Hour() != 23 || got.Minute() != 59 {
		t.Errorf("fields not taken literally: %v", got)
	}
}
