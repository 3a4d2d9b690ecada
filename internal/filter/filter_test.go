package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mph-llm-experiments/alearn/internal/datefmt"
	"github.com/mph-llm-experiments/alearn/internal/model"
	"github.com/mph-llm-experiments/alearn/internal/parser"
)

func ids(activities []model.Activity) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.ID)
	}
	return out
}

func criteria(typ, status, course string) model.FilterCriteria {
	return model.FilterCriteria{Type: typ, Status: status, Course: course}
}

func TestWildcardReturnsEverythingSorted(t *testing.T) {
	got := FilterAndSortIn(parser.SampleActivities(), model.NoFilters(), time.UTC)

	assert.Equal(t, []string{"5", "6", "1", "3", "4", "2"}, ids(got))
}

func TestWildcardIgnoresInputOrder(t *testing.T) {
	reversed := parser.SampleActivities()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	assert.Equal(t,
		ids(FilterAndSortIn(parser.SampleActivities(), model.NoFilters(), time.UTC)),
		ids(FilterAndSortIn(reversed, model.NoFilters(), time.UTC)))
}

func TestFilterByType(t *testing.T) {
	c := criteria("assignment", model.All, model.All)
	got := FilterAndSortIn(parser.SampleActivities(), c, time.UTC)

	assert.Equal(t, []string{"5", "2"}, ids(got))
	for _, a := range got {
		assert.Equal(t, model.TypeAssignment, a.Type)
	}
	assert.Equal(t, 1, ActiveCount(c))
}

func TestFilterNoMatch(t *testing.T) {
	c := criteria("quiz", "completed", model.All)
	got := FilterAndSortIn(parser.SampleActivities(), c, time.UTC)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 2, ActiveCount(c))
}

func TestFilterCombinesDimensions(t *testing.T) {
	tests := []struct {
		name string
		c    model.FilterCriteria
		want []string
	}{
		{"status only", criteria(model.All, "completed", model.All), []string{"5"}},
		{"course only", criteria(model.All, model.All, "Cloud Computing"), []string{"6", "3"}},
		{"type and course", criteria("online_class", model.All, "Machine Learning"), []string{"1"}},
		{"all three", criteria("assignment", "in_progress", "Machine Learning"), []string{"2"}},
		{"unknown type value", criteria("Assignment", model.All, model.All), []string{}},
		{"unknown course", criteria(model.All, model.All, "machine learning"), []string{}},
		{"empty fields are wildcards", model.FilterCriteria{}, []string{"5", "6", "1", "3", "4", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterAndSortIn(parser.SampleActivities(), tt.c, time.UTC)))
		})
	}
}

func TestMoreSpecificCriteriaIsSubset(t *testing.T) {
	activities := parser.SampleActivities()
	base := model.NoFilters()

	for _, typ := range Types() {
		for _, status := range Statuses() {
			for _, course := range Courses(activities) {
				specific := criteria(typ, status, course)
				result := ids(FilterAndSortIn(activities, specific, time.UTC))

				for _, relaxed := range []model.FilterCriteria{
					criteria(base.Type, status, course),
					criteria(typ, base.Status, course),
					criteria(typ, status, base.Course),
				} {
					wider := ids(FilterAndSortIn(activities, relaxed, time.UTC))
					assert.Subset(t, wider, result, "%+v within %+v", specific, relaxed)
				}
			}
		}
	}
}

func TestSortIsStable(t *testing.T) {
	activities := []model.Activity{
		{ID: "late", Type: model.TypeQuiz, DueDate: "2025-03-01T10:00:00"},
		{ID: "tie-a", Type: model.TypeQuiz, DueDate: "2025-02-01T10:00:00"},
		{ID: "tie-b", Type: model.TypeOnlineClass, StartTime: "2025-02-01T10:00:00"},
		{ID: "tie-c", Type: model.TypeDiscussion, DueDate: "2025-02-01T10:00:00"},
	}

	got := FilterAndSortIn(activities, model.NoFilters(), time.UTC)
	assert.Equal(t, []string{"tie-a", "tie-b", "tie-c", "late"}, ids(got))
}

func TestUndatedAndMalformedSortAsEpoch(t *testing.T) {
	activities := []model.Activity{
		{ID: "dated", DueDate: "2025-01-01T00:00:00"},
		{ID: "undated"},
		{ID: "malformed", StartTime: "tomorrow-ish", DueDate: "2024-01-01T00:00:00"},
		{ID: "pre-epoch", DueDate: "1960-06-01T00:00:00"},
	}

	got := FilterAndSortIn(activities, model.NoFilters(), time.UTC)
	assert.Equal(t, []string{"pre-epoch", "undated", "malformed", "dated"}, ids(got))
}

func TestStartTimeTakesPrecedence(t *testing.T) {
	a := model.Activity{StartTime: "2025-05-01T09:00:00", DueDate: "2025-01-01T09:00:00"}
	assert.Equal(t, time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC), EffectiveDate(a, time.UTC))
	assert.True(t, EffectiveDate(model.Activity{}, time.UTC).Equal(datefmt.Epoch))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	activities := parser.SampleActivities()
	before := ids(activities)

	FilterAndSort(activities, criteria("assignment", model.All, model.All))
	FilterAndSort(activities, model.NoFilters())

	assert.Equal(t, before, ids(activities))
	assert.Equal(t, parser.SampleActivities(), activities)
}

func TestFilterIsDeterministic(t *testing.T) {
	c := criteria(model.All, "upcoming", model.All)
	first := FilterAndSort(parser.SampleActivities(), c)
	second := FilterAndSort(parser.SampleActivities(), c)

	assert.Equal(t, first, second)
}

func TestActiveCount(t *testing.T) {
	assert.Equal(t, 0, ActiveCount(model.NoFilters()))
	assert.Equal(t, 0, ActiveCount(model.FilterCriteria{}))
	assert.Equal(t, 1, ActiveCount(criteria(model.All, model.All, "AI Fundamentals")))
	assert.Equal(t, 3, ActiveCount(criteria("quiz", "overdue", "AI Fundamentals")))
}

func TestOptions(t *testing.T) {
	assert.Equal(t,
		[]string{"all", "Machine Learning", "Cloud Computing", "AI Fundamentals"},
		Courses(parser.SampleActivities()))
	assert.Equal(t, []string{"all"}, Courses(nil))
	assert.Equal(t, []string{"all", "online_class", "assignment", "quiz", "discussion"}, Types())
	assert.Equal(t, []string{"all", "upcoming", "in_progress", "completed", "overdue"}, Statuses())
}
