package model

import (
	"strings"
)

// ActivityType is the kind of learning activity
type ActivityType string

const (
	TypeOnlineClass ActivityType = "online_class"
	TypeAssignment  ActivityType = "assignment"
	TypeQuiz        ActivityType = "quiz"
	TypeDiscussion  ActivityType = "discussion"
)

// ActivityTypes lists every activity type in display order.
var ActivityTypes = []ActivityType{TypeOnlineClass, TypeAssignment, TypeQuiz, TypeDiscussion}

// ActivityStatus is where the learner stands on an activity
type ActivityStatus string

const (
	StatusUpcoming   ActivityStatus = "upcoming"
	StatusInProgress ActivityStatus = "in_progress"
	StatusCompleted  ActivityStatus = "completed"
	StatusOverdue    ActivityStatus = "overdue"
)

// ActivityStatuses lists every status in display order.
var ActivityStatuses = []ActivityStatus{StatusUpcoming, StatusInProgress, StatusCompleted, StatusOverdue}

// Activity represents one schedulable learning item
type Activity struct {
	ID     string         `yaml:"id" json:"id"`
	Type   ActivityType   `yaml:"type" json:"type" validate:"required,oneof=online_class assignment quiz discussion"`
	Title  string         `yaml:"title" json:"title" validate:"required"`
	Course string         `yaml:"course" json:"course" validate:"required"`
	Status ActivityStatus `yaml:"status" json:"status" validate:"required,oneof=upcoming in_progress completed overdue"`

	// Online classes
	Instructor  string `yaml:"instructor,omitempty" json:"instructor,omitempty"`
	StartTime   string `yaml:"startTime,omitempty" json:"startTime,omitempty" validate:"required_without=DueDate"`
	Duration    string `yaml:"duration,omitempty" json:"duration,omitempty"`
	MeetingLink string `yaml:"meetingLink,omitempty" json:"meetingLink,omitempty" validate:"omitempty,url"`

	// Assignments, quizzes and discussions
	DueDate          string `yaml:"dueDate,omitempty" json:"dueDate,omitempty" validate:"required_without=StartTime"`
	Points           int    `yaml:"points,omitempty" json:"points,omitempty" validate:"gte=0"`
	SubmissionStatus string `yaml:"submissionStatus,omitempty" json:"submissionStatus,omitempty"`
	Posts            int    `yaml:"posts,omitempty" json:"posts,omitempty" validate:"gte=0"`
	RequiredPosts    int    `yaml:"requiredPosts,omitempty" json:"requiredPosts,omitempty" validate:"gte=0"`
}

// ScheduledAt returns the raw timestamp the activity is ordered by: the start
// time when set, otherwise the due date. Empty when neither is set.
func (a Activity) ScheduledAt() string {
	if a.StartTime != "" {
		return a.StartTime
	}
	return a.DueDate
}

// TypeLabel returns the display name of the activity type.
func (a Activity) TypeLabel() string {
	switch a.Type {
	case TypeOnlineClass:
		return "Online Class"
	case TypeAssignment:
		return "Assignment"
	case TypeQuiz:
		return "Quiz"
	case TypeDiscussion:
		return "Discussion"
	default:
		return string(a.Type)
	}
}

// ActionLabel is the call to action shown on the activity card.
func (a Activity) ActionLabel() string {
	switch a.Status {
	case StatusCompleted:
		return "Review"
	case StatusInProgress:
		return "Continue"
	default:
		return "Start"
	}
}

// ActionVerb is the progressive form of ActionLabel, used when the activity is opened.
func (a Activity) ActionVerb() string {
	switch a.Status {
	case StatusCompleted:
		return "Reviewing"
	case StatusInProgress:
		return "Continuing"
	default:
		return "Starting"
	}
}

// SubmissionLabel returns the submission status in human form ("not_started" -> "not started").
func (a Activity) SubmissionLabel() string {
	return Humanize(a.SubmissionStatus)
}

// Humanize replaces the first underscore of an enum value with a space.
func Humanize(v string) string {
	return strings.Replace(v, "_", " ", 1)
}

// TypeOptionLabel is the filter option label for an activity type value.
func TypeOptionLabel(v string) string {
	switch ActivityType(v) {
	case TypeOnlineClass:
		return "Online Classes"
	case TypeAssignment:
		return "Assignments"
	case TypeQuiz:
		return "Quizzes"
	case TypeDiscussion:
		return "Discussions"
	}
	if v == All {
		return "All Types"
	}
	return v
}

// StatusOptionLabel is the filter option label for a status value.
func StatusOptionLabel(v string) string {
	switch ActivityStatus(v) {
	case StatusUpcoming:
		return "Upcoming"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusOverdue:
		return "Overdue"
	}
	if v == All {
		return "All Status"
	}
	return v
}

// CourseOptionLabel is the filter option label for a course value.
func CourseOptionLabel(v string) string {
	if v == All {
		return "All Courses"
	}
	return v
}
