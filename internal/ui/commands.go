package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mph-llm-experiments/alearn/internal/model"
)

// Message types
type activitiesLoadedMsg struct {
	activities []model.Activity
}

type errorMsg struct {
	err error
}

type clearMessageMsg struct{}

// loadActivities returns a command that reads the activity collection
func (m Model) loadActivities() tea.Cmd {
	loader, path, log := m.loader, m.path, m.log
	return func() tea.Msg {
		activities, err := loader.Load(path)
		if err != nil {
			log.Warn("failed to load activities", zap.String("path", path), zap.Error(err))
			return errorMsg{err: fmt.Errorf("failed to load activities: %w", err)}
		}
		return activitiesLoadedMsg{activities: activities}
	}
}

// clearMessageAfter returns a command that clears the message after a delay
func clearMessageAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}
