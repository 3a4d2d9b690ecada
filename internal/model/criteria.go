package model

import "strings"

// All is the wildcard value of a filter dimension.
const All = "all"

// FilterCriteria selects activities by type, status and course. Each field is
// either All or a concrete value; an empty field counts as All.
type FilterCriteria struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Course string `json:"course"`
}

// NoFilters matches every activity.
func NoFilters() FilterCriteria {
	return FilterCriteria{Type: All, Status: All, Course: All}
}

// IsWildcard reports whether a dimension value matches everything.
func IsWildcard(v string) bool {
	return v == "" || v == All
}

// Normalize returns the criteria with empty dimensions set to All.
func (c FilterCriteria) Normalize() FilterCriteria {
	if c.Type == "" {
		c.Type = All
	}
	if c.Status == "" {
		c.Status = All
	}
	if c.Course == "" {
		c.Course = All
	}
	return c
}

// Summary describes the active dimensions for the filter bar, e.g.
// "online class - in progress - Machine Learning", or "All Activities".
func (c FilterCriteria) Summary() string {
	var parts []string
	if !IsWildcard(c.Type) {
		parts = append(parts, Humanize(c.Type))
	}
	if !IsWildcard(c.Status) {
		parts = append(parts, Humanize(c.Status))
	}
	if !IsWildcard(c.Course) {
		parts = append(parts, c.Course)
	}
	if len(parts) == 0 {
		return "All Activities"
	}
	return strings.Join(parts, " - ")
}
