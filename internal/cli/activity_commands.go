package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/mph-llm-experiments/alearn/internal/config"
	"github.com/mph-llm-experiments/alearn/internal/datefmt"
	"github.com/mph-llm-experiments/alearn/internal/filter"
	"github.com/mph-llm-experiments/alearn/internal/model"
	"github.com/mph-llm-experiments/alearn/internal/parser"
	"github.com/mph-llm-experiments/alearn/internal/ui"
)

// listResult is the JSON shape of `alearn list --json`.
type listResult struct {
	Filters       model.FilterCriteria `json:"filters"`
	ActiveFilters int                  `json:"activeFilters"`
	Count         int                  `json:"count"`
	Activities    []model.Activity     `json:"activities"`
}

func (e *env) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(e.out, string(data))
	return nil
}

func listCommand(e *env) *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	typ := fs.String("type", model.All, "Filter by type (all, online_class, assignment, quiz, discussion)")
	status := fs.String("status", model.All, "Filter by status (all, upcoming, in_progress, completed, overdue)")
	course := fs.String("course", model.All, "Filter by course name (exact match)")

	return &Command{
		Name:        "list",
		Usage:       "alearn list [options]",
		Description: "List activities with optional filtering, earliest first",
		Flags:       fs,
		Run: func(cmd *Command, args []string) error {
			activities, err := e.loader.Load(e.cfg.ActivitiesFile)
			if err != nil {
				return err
			}

			criteria := model.FilterCriteria{Type: *typ, Status: *status, Course: *course}.Normalize()
			filtered := filter.FilterAndSort(activities, criteria)
			active := filter.ActiveCount(criteria)
			e.log.Debug("filters applied",
				zap.String("type", criteria.Type),
				zap.String("status", criteria.Status),
				zap.String("course", criteria.Course),
				zap.Int("active", active),
				zap.Int("matched", len(filtered)))

			if e.flags.JSON {
				return e.printJSON(listResult{
					Filters:       criteria,
					ActiveFilters: active,
					Count:         len(filtered),
					Activities:    filtered,
				})
			}

			if !e.flags.Quiet {
				summary := criteria.Summary()
				if active > 0 {
					summary = fmt.Sprintf("%s (%d active)", summary, active)
				}
				fmt.Fprintf(e.out, "%s - %s\n\n", ui.CountLabel(len(filtered)), summary)
			}

			if len(filtered) == 0 {
				fmt.Fprintln(e.out, ui.EmptyStateText)
				return nil
			}

			f := datefmt.New(e.clock)
			fmt.Fprintf(e.out, "%-4s %-13s %-34s %-18s %-12s %s\n",
				"ID", "TYPE", "TITLE", "COURSE", "STATUS", "WHEN")
			fmt.Fprintln(e.out, strings.Repeat("-", 100))

			for _, a := range filtered {
				fmt.Fprintf(e.out, "%-4s %-13s %-34s %-18s %-12s %s\n",
					truncate(a.ID, 4), a.TypeLabel(), truncate(a.Title, 34), truncate(a.Course, 18),
					model.StatusOptionLabel(string(a.Status)), when(a, f))
			}
			return nil
		},
	}
}

// when is the one-line schedule label of an activity.
func when(a model.Activity, f *datefmt.Formatter) string {
	switch {
	case a.StartTime != "":
		return fmt.Sprintf("%s at %s", f.Date(a.StartTime), f.Time(a.StartTime))
	case a.DueDate != "":
		return "Due: " + f.Date(a.DueDate)
	default:
		return "-"
	}
}

func showCommand(e *env) *Command {
	return &Command{
		Name:        "show",
		Usage:       "alearn show <id>",
		Description: "Show activity details by id",
		Run: func(cmd *Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("usage: alearn show <id>")
			}

			activities, err := e.loader.Load(e.cfg.ActivitiesFile)
			if err != nil {
				return err
			}

			activity := parser.FindActivityByID(activities, args[0])
			if activity == nil {
				return fmt.Errorf("activity not found: %s", args[0])
			}

			if e.flags.JSON {
				return e.printJSON(activity)
			}

			fmt.Fprintf(e.out, "%s  %s\n", strings.ToUpper(activity.TypeLabel()), activity.Course)
			fmt.Fprintf(e.out, "# %s\n\n", activity.Title)
			fmt.Fprintf(e.out, "  %-12s%s\n", "Progress:", model.StatusOptionLabel(string(activity.Status)))
			for _, d := range ui.CardDetails(*activity, datefmt.New(e.clock)) {
				fmt.Fprintf(e.out, "  %-12s%s\n", d.Label+":", d.Text)
			}
			fmt.Fprintf(e.out, "\n  [%s]\n", activity.ActionLabel())
			return nil
		},
	}
}

func coursesCommand(e *env) *Command {
	return &Command{
		Name:        "courses",
		Usage:       "alearn courses",
		Description: "List course names usable with 'list --course'",
		Run: func(cmd *Command, args []string) error {
			activities, err := e.loader.Load(e.cfg.ActivitiesFile)
			if err != nil {
				return err
			}

			courses := filter.Courses(activities)[1:]
			if e.flags.JSON {
				return e.printJSON(courses)
			}
			for _, c := range courses {
				fmt.Fprintln(e.out, c)
			}
			return nil
		},
	}
}

func initCommand(e *env) *Command {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool("force", false, "Overwrite an existing activities file")

	return &Command{
		Name:        "init",
		Usage:       "alearn init [--force]",
		Description: "Write the sample activities to the activities file",
		Flags:       fs,
		Run: func(cmd *Command, args []string) error {
			path := e.cfg.ActivitiesFile
			if path == "" {
				homeDir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				path = config.DefaultActivitiesFile(homeDir)
			}

			if _, err := os.Stat(path); err == nil && !*force {
				return fmt.Errorf("activities file '%s' already exists (use --force to overwrite)", path)
			}

			if err := parser.SaveActivities(path, parser.SampleActivities()); err != nil {
				return fmt.Errorf("failed to write activities: %w", err)
			}
			e.log.Info("wrote sample activities", zap.String("path", path))

			if e.flags.JSON {
				return e.printJSON(map[string]interface{}{
					"file":  path,
					"count": len(parser.SampleActivities()),
				})
			}
			if !e.flags.Quiet {
				fmt.Fprintf(e.out, "Wrote %d activities to %s\n", len(parser.SampleActivities()), path)
				if e.cfg.ActivitiesFile == "" {
					fmt.Fprintf(e.out, "Set activities_file = %q in %s to use it\n", path, "~/.config/alearn/config.toml")
				}
			}
			return nil
		},
	}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
