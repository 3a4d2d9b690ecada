// Package filter selects and orders activities for display.
package filter

import (
	"sort"
	"time"

	"github.com/mph-llm-experiments/alearn/internal/datefmt"
	"github.com/mph-llm-experiments/alearn/internal/model"
)

// FilterAndSort returns the activities matching every non-wildcard dimension
// of c, ordered by effective date. Activities with equal dates keep their
// input order. The input slice is not modified.
func FilterAndSort(activities []model.Activity, c model.FilterCriteria) []model.Activity {
	return FilterAndSortIn(activities, c, time.Local)
}

// FilterAndSortIn is FilterAndSort with offset-less timestamps read in loc.
func FilterAndSortIn(activities []model.Activity, c model.FilterCriteria, loc *time.Location) []model.Activity {
	type dated struct {
		activity model.Activity
		at       time.Time
	}

	var kept []dated
	for _, a := range activities {
		if !Matches(a, c) {
			continue
		}
		kept = append(kept, dated{activity: a, at: EffectiveDate(a, loc)})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].at.Before(kept[j].at)
	})

	result := make([]model.Activity, 0, len(kept))
	for _, d := range kept {
		result = append(result, d.activity)
	}
	return result
}

// Matches reports whether a passes every dimension of c.
func Matches(a model.Activity, c model.FilterCriteria) bool {
	if !model.IsWildcard(c.Type) && string(a.Type) != c.Type {
		return false
	}
	if !model.IsWildcard(c.Status) && string(a.Status) != c.Status {
		return false
	}
	if !model.IsWildcard(c.Course) && a.Course != c.Course {
		return false
	}
	return true
}

// EffectiveDate is the instant an activity sorts by: its start time, else its
// due date, else the epoch. An unparseable timestamp also yields the epoch.
func EffectiveDate(a model.Activity, loc *time.Location) time.Time {
	ts := a.ScheduledAt()
	if ts == "" {
		return datefmt.Epoch
	}
	return datefmt.ParseOrEpoch(ts, loc)
}

// ActiveCount returns how many dimensions of c are set to a concrete value.
func ActiveCount(c model.FilterCriteria) int {
	count := 0
	for _, v := range []string{c.Type, c.Status, c.Course} {
		if !model.IsWildcard(v) {
			count++
		}
	}
	return count
}

// Courses returns the course filter options: All followed by each distinct
// course in the order it first appears.
func Courses(activities []model.Activity) []string {
	courses := []string{model.All}
	seen := make(map[string]bool)
	for _, a := range activities {
		if seen[a.Course] {
			continue
		}
		seen[a.Course] = true
		courses = append(courses, a.Course)
	}
	return courses
}

// Types returns the type filter options, All first.
func Types() []string {
	options := []string{model.All}
	for _, t := range model.ActivityTypes {
		options = append(options, string(t))
	}
	return options
}

// Statuses returns the status filter options, All first.
func Statuses() []string {
	options := []string{model.All}
	for _, s := range model.ActivityStatuses {
		options = append(options, string(s))
	}
	return options
}
