package parser

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mph-llm-experiments/acore"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mph-llm-experiments/alearn/internal/model"
)

// ActivityFile is the on-disk layout of an activities file.
type ActivityFile struct {
	Activities []model.Activity `yaml:"activities"`
}

// Loader reads activity collections.
type Loader struct {
	log       *zap.Logger
	validator *Validator
}

// NewLoader returns a Loader logging to log (a no-op logger when nil).
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log, validator: NewValidator()}
}

// Load returns the activities stored at path, or the built-in sample set when
// path is empty.
func (l *Loader) Load(path string) ([]model.Activity, error) {
	if path == "" {
		l.log.Debug("no activities file configured, using sample set")
		return SampleActivities(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("activities file '%s' does not exist (run 'alearn init' to create it)", path)
		}
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	activities, err := l.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.log.Debug("loaded activities", zap.String("path", path), zap.Int("count", len(activities)))
	return activities, nil
}

// Parse decodes and validates an activities document. Activities without an id
// are given a fresh one.
func (l *Loader) Parse(content []byte) ([]model.Activity, error) {
	var file ActivityFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("error parsing activities: %w", err)
	}

	seen := make(map[string]int, len(file.Activities))
	for i := range file.Activities {
		a := &file.Activities[i]
		if a.ID == "" {
			a.ID = acore.NewID()
			l.log.Debug("assigned activity id", zap.String("id", a.ID), zap.String("title", a.Title))
		}
		if err := l.validator.Activity(*a); err != nil {
			return nil, fmt.Errorf("activity %d (%s): %w", i+1, a.ID, err)
		}
		if prev, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("activity %d: duplicate id %q (first used by activity %d)", i+1, a.ID, prev)
		}
		seen[a.ID] = i + 1
	}

	if file.Activities == nil {
		file.Activities = []model.Activity{}
	}
	return file.Activities, nil
}

// SaveActivities writes activities to path, replacing the file atomically.
func SaveActivities(path string, activities []model.Activity) error {
	data, err := yaml.Marshal(ActivityFile{Activities: activities})
	if err != nil {
		return fmt.Errorf("error marshaling activities: %w", err)
	}

	var content bytes.Buffer
	content.WriteString("# alearn activities\n")
	content.Write(data)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, content.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename activities file: %w", err)
	}

	return nil
}

// FindActivityByID finds an activity by id
func FindActivityByID(activities []model.Activity, id string) *model.Activity {
	for i, a := range activities {
		if a.ID == id {
			return &activities[i]
		}
	}
	return nil
}
