// Package datetime parses the flexible date/time strings users type into
// booking forms and turns them into a concrete local instant. It accepts
// ISO yyyy-m-d as well as d-m-yyyy and d/m/yyyy dates, 24-hour h:mm times,
// and rejects impossible calendar values instead of letting them roll over
// into the next month.
package datetime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMissingTime is returned when no time is given and no default is
	// configured.
	ErrMissingTime = errors.New("time is required")
	// ErrInvalidTime is returned for malformed or out-of-range times.
	ErrInvalidTime = errors.New("invalid time")
	// ErrInvalidDate is returned for unrecognized date shapes and for
	// calendar-impossible dates such as 31 February.
	ErrInvalidDate = errors.New("invalid date")
)

var (
	timeRe        = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	isoDateRe     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dayFirstRe    = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	placeholderRe = regexp.MustCompile(`^-+:?-*$`)
)

// Options control parsing behavior.
type Options struct {
	// DefaultTime is substituted when the time input is blank or a
	// placeholder. Empty means no default: a missing time is an error.
	DefaultTime string
}

// Option mutates Options.
type Option func(*Options)

// WithDefaultTime sets the fallback used when no time is entered.
func WithDefaultTime(hhmm string) Option {
	return func(o *Options) { o.DefaultTime = hhmm }
}

// Parse converts user-entered date and time text into a local wall-clock
// instant. The (year, month, day, hour, minute) values are taken literally
// in the local location; no timezone conversion is performed.
func Parse(dateText, timeText string, opts ...Option) (time.Time, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	d := strings.TrimSpace(dateText)
	if d == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidDate)
	}

	t := strings.TrimSpace(timeText)
	// Treat placeholders like "--:--" or a bare ":" as empty input.
	if placeholderRe.MatchString(t) || t == ":" {
		t = ""
	}
	if t == "" {
		if o.DefaultTime == "" {
			return time.Time{}, ErrMissingTime
		}
		t = o.DefaultTime
	}

	tm := timeRe.FindStringSubmatch(t)
	if tm == nil {
		return time.Time{}, fmt.Errorf("%w: %q is not h:mm", ErrInvalidTime, t)
	}
	hour, _ := strconv.Atoi(tm[1])
	minute, _ := strconv.Atoi(tm[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidTime, hour, minute)
	}

	var year, month, day int
	if m := isoDateRe.FindStringSubmatch(d); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := dayFirstRe.FindStringSubmatch(d); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		return time.Time{}, fmt.Errorf("%w: unrecognized format %q", ErrInvalidDate, d)
	}

	instant := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)

	// time.Date normalizes out-of-range values (31 Feb becomes 2/3 Mar), so
	// round-trip the fields to reject impossible dates.
	if instant.Year() != year ||
		instant.Month() != time.Month(month) ||
		instant.Day() != day ||
		instant.Hour() != hour ||
		instant.Minute() != minute {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidDate, year, month, day)
	}

	return instant, nil
}
