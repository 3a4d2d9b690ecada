package cli

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mph-llm-experiments/alearn/internal/config"
	"github.com/mph-llm-experiments/alearn/internal/parser"
)

func runCLI(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ALEARN_FILE", "")
	if cfg == nil {
		cfg = &config.Config{LogLevel: "error", LogFormat: "console"}
	}
	var out, errOut bytes.Buffer
	err := run(cfg, args, &out, &errOut, false)
	return out.String(), err
}

func TestListAll(t *testing.T) {
	out, err := runCLI(t, nil, "list", "--now", "2025-12-25T12:00:00")
	require.NoError(t, err)

	assert.Contains(t, out, "6 activities - All Activities")
	assert.Contains(t, out, "Introduction to Neural Networks")
	assert.Contains(t, out, "Yesterday at 10:00 AM")
	assert.Contains(t, out, "Due: Tomorrow")
}

func TestListFilteredByType(t *testing.T) {
	out, err := runCLI(t, nil, "list", "--type", "assignment", "--now=2025-12-25T12:00:00")
	require.NoError(t, err)

	assert.Contains(t, out, "2 activities - assignment (1 active)")
	assert.Contains(t, out, "Build a CNN Image Classifier")
	assert.NotContains(t, out, "Introduction to Neural Networks")
	assert.Less(t,
		bytes.Index([]byte(out), []byte("Data Preprocessing Pipeline")),
		bytes.Index([]byte(out), []byte("Build a CNN Image Classifier")))
}

func TestListEmpty(t *testing.T) {
	out, err := runCLI(t, nil, "list", "--type", "quiz", "--status", "completed")
	require.NoError(t, err)

	assert.Contains(t, out, "0 activities - quiz - completed (2 active)")
	assert.Contains(t, out, "No activities found with current filters")
}

func TestListJSON(t *testing.T) {
	out, err := runCLI(t, nil, "--json", "list", "--type", "assignment")
	require.NoError(t, err)

	var result listResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.ActiveFilters)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "all", result.Filters.Status)
	require.Len(t, result.Activities, 2)
	assert.Equal(t, "5", result.Activities[0].ID)
	assert.Equal(t, "2", result.Activities[1].ID)
}

func TestShow(t *testing.T) {
	out, err := runCLI(t, nil, "show", "4", "--now", "2025-12-25T12:00:00")
	require.NoError(t, err)

	assert.Contains(t, out, "DISCUSSION  AI Fundamentals")
	assert.Contains(t, out, "# Ethics in AI Development")
	assert.Contains(t, out, "In 2 days")
	assert.Contains(t, out, "1 of 3 posts")
	assert.Contains(t, out, "[Continue]")
}

func TestShowErrors(t *testing.T) {
	_, err := runCLI(t, nil, "show")
	assert.ErrorContains(t, err, "usage")

	_, err = runCLI(t, nil, "show", "99")
	assert.ErrorContains(t, err, "activity not found: 99")
}

func TestCourses(t *testing.T) {
	out, err := runCLI(t, nil, "courses")
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning\nCloud Computing\nAI Fundamentals\n", out)
}

func TestInitWritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.yaml")

	out, err := runCLI(t, nil, "--file", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 6 activities")

	loaded, err := parser.NewLoader(nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, parser.SampleActivities(), loaded)

	_, err = runCLI(t, nil, "--file", path, "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = runCLI(t, nil, "--file", path, "init", "--force")
	assert.NoError(t, err)
}

func TestInitDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := runCLI(t, nil, "-q", "init")
	require.NoError(t, err)

	_, err = os.Stat(config.DefaultActivitiesFile(home))
	assert.NoError(t, err)
}

func TestActivitiesFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
activities:
  - id: s1
    type: quiz
    title: Hypothesis Testing
    course: Statistics
    status: upcoming
    dueDate: "2025-12-26T09:00:00"
`), 0644))

	cfg := &config.Config{LogLevel: "error"}
	var out bytes.Buffer
	t.Setenv("ALEARN_FILE", path)
	require.NoError(t, run(cfg, []string{"courses"}, &out, &bytes.Buffer{}, false))
	assert.Equal(t, "Statistics\n", out.String())
}

func TestFileOverrideLeavesCallerConfigUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.yaml")
	require.NoError(t, parser.SaveActivities(path, parser.SampleActivities()))
	cfg := &config.Config{ActivitiesFile: "/configured/activities.yaml", LogLevel: "error"}

	_, err := runCLI(t, cfg, "--file", path, "courses")
	require.NoError(t, err)
	assert.Equal(t, "/configured/activities.yaml", cfg.ActivitiesFile)

	t.Setenv("ALEARN_FILE", path)
	require.NoError(t, run(cfg, []string{"courses"}, &bytes.Buffer{}, &bytes.Buffer{}, false))
	assert.Equal(t, "/configured/activities.yaml", cfg.ActivitiesFile)
}

func TestMissingActivitiesFile(t *testing.T) {
	_, err := runCLI(t, nil, "--file", filepath.Join(t.TempDir(), "none.yaml"), "list")
	assert.ErrorContains(t, err, "does not exist")
}

func TestInvalidNow(t *testing.T) {
	_, err := runCLI(t, nil, "--now", "someday", "list")
	assert.ErrorContains(t, err, "invalid --now")
}

func TestUnknownCommand(t *testing.T) {
	_, err := runCLI(t, nil, "frobnicate")
	assert.ErrorContains(t, err, `unknown command "frobnicate"`)
}

func TestParseGlobalFlags(t *testing.T) {
	g, rest, err := ParseGlobalFlags([]string{"--json", "list", "--config", "c.toml", "--file=a.yaml", "-q", "--type", "quiz"})
	require.NoError(t, err)
	assert.Equal(t, GlobalFlags{Config: "c.toml", File: "a.yaml", JSON: true, Quiet: true}, g)
	assert.Equal(t, []string{"list", "--type", "quiz"}, rest)

	_, _, err = ParseGlobalFlags([]string{"--file"})
	assert.Error(t, err)
}

func TestReorderFlagsFirst(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.String("type", "", "")
	fs.Bool("force", false, "")

	got := reorderFlagsFirst([]string{"pos1", "--type", "quiz", "--force", "pos2", "--", "--literal"}, fs)
	assert.Equal(t, []string{"--type", "quiz", "--force", "pos1", "pos2", "--literal"}, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Introdu...", truncate("Introduction", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
