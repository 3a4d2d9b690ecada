package ui

import (
	"fmt"

	"github.com/mph-llm-experiments/alearn/internal/datefmt"
	"github.com/mph-llm-experiments/alearn/internal/model"
)

// Detail is one labelled line on an activity card.
type Detail struct {
	Label string
	Text  string
}

// CardDetails returns the detail lines shown for an activity. Which lines
// appear depends on the activity type; empty optional fields are skipped.
func CardDetails(a model.Activity, f *datefmt.Formatter) []Detail {
	var details []Detail
	add := func(label, text string) {
		if text != "" {
			details = append(details, Detail{Label: label, Text: text})
		}
	}

	switch a.Type {
	case model.TypeOnlineClass:
		add("When", fmt.Sprintf("%s at %s", f.Date(a.StartTime), f.Time(a.StartTime)))
		add("Instructor", a.Instructor)
		add("Duration", a.Duration)
		add("Link", a.MeetingLink)

	case model.TypeAssignment, model.TypeQuiz:
		add("Due", f.Date(a.DueDate))
		add("Points", fmt.Sprintf("%d points", a.Points))
		add("Duration", a.Duration)
		add("Status", a.SubmissionLabel())

	case model.TypeDiscussion:
		add("Due", f.Date(a.DueDate))
		if a.RequiredPosts > 0 {
			add("Posts", fmt.Sprintf("%d of %d posts", a.Posts, a.RequiredPosts))
		}

	default:
		if ts := a.ScheduledAt(); ts != "" {
			add("When", f.Date(ts))
		}
	}

	return details
}

// CountLabel returns "1 activity" or "N activities".
func CountLabel(n int) string {
	if n == 1 {
		return "1 activity"
	}
	return fmt.Sprintf("%d activities", n)
}

// EmptyStateText is shown when no activity passes the current filters.
const EmptyStateText = "No activities found with current filters"
