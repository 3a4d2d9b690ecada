package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mph-llm-experiments/alearn/internal/config"
	"github.com/mph-llm-experiments/alearn/internal/datefmt"
	"github.com/mph-llm-experiments/alearn/internal/logger"
	"github.com/mph-llm-experiments/alearn/internal/parser"
	"github.com/mph-llm-experiments/alearn/internal/ui"
)

// env is what every command needs to do its work.
type env struct {
	cfg    *config.Config
	flags  GlobalFlags
	log    *zap.Logger
	loader *parser.Loader
	clock  func() time.Time
	out    io.Writer
}

// Run executes the CLI with the given config and arguments.
func Run(cfg *config.Config, args []string) error {
	return run(cfg, args, os.Stdout, os.Stderr, true)
}

func run(cfg *config.Config, args []string, out, errOut io.Writer, interactive bool) error {
	flags, remaining, err := ParseGlobalFlags(args)
	if err != nil {
		return err
	}

	// Reload config if --config flag was provided
	if flags.Config != "" {
		newCfg, err := config.Load(flags.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = newCfg
	}

	// Overrides below must not leak into the caller's config
	c := *cfg
	cfg = &c

	// --file wins over ALEARN_FILE, which wins over the config file
	if flags.File != "" {
		cfg.ActivitiesFile = flags.File
	} else if envFile := os.Getenv("ALEARN_FILE"); envFile != "" {
		cfg.ActivitiesFile = envFile
	}

	level := cfg.LogLevel
	if flags.Quiet {
		level = "error"
	}
	log, err := logger.New(level, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	clock := time.Now
	if flags.Now != "" {
		pinned, err := datefmt.Parse(flags.Now, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		clock = datefmt.Fixed(pinned)
		log.Debug("clock pinned", zap.Time("now", pinned))
	}

	e := &env{
		cfg:    cfg,
		flags:  flags,
		log:    log,
		loader: parser.NewLoader(log),
		clock:  clock,
		out:    out,
	}

	// If no arguments, launch TUI
	if len(remaining) == 0 && interactive {
		ui.ApplyTheme(cfg.Theme, flags.NoColor)
		m := ui.NewModel(ui.Options{
			Loader: e.loader,
			Path:   cfg.ActivitiesFile,
			Clock:  clock,
			Log:    log,
		})
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	}

	// Create root command
	root := &Command{
		Name:  "alearn",
		Usage: "alearn <command> [options]",
		Description: `Browse learning activities: classes, assignments, quizzes and discussions.

Run without a command to open the interactive view.

Commands:
  list       List activities, optionally filtered
  show       Show one activity
  courses    List the courses activities belong to
  init       Write the sample activities file

Global Options:
  --config PATH    Use specific config file
  --file PATH      Override activities file
  --now TIMESTAMP  Format dates relative to this instant
  --json           Output in JSON format
  --no-color       Disable color output
  --quiet, -q      Minimal output`,
		Err: errOut,
	}

	root.Subcommands = append(root.Subcommands,
		listCommand(e),
		showCommand(e),
		coursesCommand(e),
		initCommand(e),
	)

	return root.Execute(remaining)
}
