package datefmt

import (
	"fmt"
	"time"
)

// Accepted local timestamp layouts, most specific first. Timestamps with an
// explicit offset are tried as RFC 3339 before these.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Epoch is the fallback instant for missing or unparseable timestamps.
var Epoch = time.Unix(0, 0).UTC()

// Parse reads an ISO-8601-like timestamp. Timestamps without an offset are
// interpreted in loc (time.Local when nil).
func Parse(ts string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", ts)
}

// ParseOrEpoch is Parse with the epoch substituted on failure.
func ParseOrEpoch(ts string, loc *time.Location) time.Time {
	t, err := Parse(ts, loc)
	if err != nil {
		return Epoch
	}
	return t
}

// Formatter renders relative day labels and clock labels against an injected
// clock.
type Formatter struct {
	now func() time.Time
}

// New returns a Formatter reading the current instant from clock. A nil clock
// means time.Now.
func New(clock func() time.Time) *Formatter {
	if clock == nil {
		clock = time.Now
	}
	return &Formatter{now: clock}
}

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Date returns "Today", "Tomorrow", "Yesterday", "In N days", "N days ago"
// for targets within a week of now, and "Jan 2, 2006" otherwise.
func (f *Formatter) Date(ts string) string {
	now := f.now()
	return relativeDay(ParseOrEpoch(ts, now.Location()), now)
}

// Time returns the 12-hour clock label of ts, e.g. "9:30 AM".
func (f *Formatter) Time(ts string) string {
	now := f.now()
	t, err := Parse(ts, now.Location())
	if err != nil {
		return Epoch.Format("3:04 PM")
	}
	return t.In(now.Location()).Format("3:04 PM")
}

var wallClock = New(time.Now)

// FormatDate formats ts relative to the wall clock.
func FormatDate(ts string) string {
	return wallClock.Date(ts)
}

// FormatTime formats the time of day of ts.
func FormatTime(ts string) string {
	return wallClock.Time(ts)
}

// DayDiff returns the number of calendar days from now to t, using now's
// location for day boundaries.
func DayDiff(t, now time.Time) int {
	loc := now.Location()
	t = t.In(loc)
	// Compare as UTC dates so DST transitions do not shorten a day.
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(today).Hours() / 24)
}

func relativeDay(t, now time.Time) string {
	diff := DayDiff(t, now)
	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff == -1:
		return "Yesterday"
	case diff >= 2 && diff <= 7:
		return fmt.Sprintf("In %d days", diff)
	case diff <= -2 && diff >= -7:
		return fmt.Sprintf("%d days ago", -diff)
	default:
		if t.Equal(Epoch) {
			return Epoch.Format("Jan 2, 2006")
		}
		return t.In(now.Location()).Format("Jan 2, 2006")
	}
}
