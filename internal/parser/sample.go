package parser

import "github.com/mph-llm-experiments/alearn/internal/model"

// SampleActivities returns the built-in activity set used when no activities
// file is configured. Only the first activity is still to be started.
// A fresh slice is returned on every call.
func SampleActivities() []model.Activity {
	return []model.Activity{
		{
			ID:          "1",
			Type:        model.TypeOnlineClass,
			Title:       "Introduction to Neural Networks",
			Course:      "Machine Learning",
			Instructor:  "Dr. Sarah Chen",
			StartTime:   "2025-12-24T10:00:00",
			Duration:    "90 min",
			MeetingLink: "https://meet.example.com/neural-networks",
			Status:      model.StatusUpcoming,
		},
		{
			ID:               "2",
			Type:             model.TypeAssignment,
			Title:            "Build a CNN Image Classifier",
			Course:           "Machine Learning",
			DueDate:          "2025-12-28T23:59:00",
			Points:           100,
			SubmissionStatus: "in_progress",
			Status:           model.StatusInProgress,
		},
		{
			ID:               "3",
			Type:             model.TypeQuiz,
			Title:            "AWS Services Overview",
			Course:           "Cloud Computing",
			DueDate:          "2025-12-26T18:00:00",
			Points:           50,
			Duration:         "30 min",
			SubmissionStatus: "in_progress",
			Status:           model.StatusInProgress,
		},
		{
			ID:            "4",
			Type:          model.TypeDiscussion,
			Title:         "Ethics in AI Development",
			Course:        "AI Fundamentals",
			DueDate:       "2025-12-27T23:59:00",
			Posts:         1,
			RequiredPosts: 3,
			Status:        model.StatusInProgress,
		},
		{
			ID:               "5",
			Type:             model.TypeAssignment,
			Title:            "Data Preprocessing Pipeline",
			Course:           "Machine Learning",
			DueDate:          "2025-12-20T23:59:00",
			Points:           80,
			SubmissionStatus: "submitted",
			Status:           model.StatusCompleted,
		},
		{
			ID:          "6",
			Type:        model.TypeOnlineClass,
			Title:       "Serverless Architectures Live Session",
			Course:      "Cloud Computing",
			Instructor:  "Prof. James Miller",
			StartTime:   "2025-12-22T14:00:00",
			Duration:    "60 min",
			MeetingLink: "https://meet.example.com/serverless",
			Status:      model.StatusInProgress,
		},
	}
}
