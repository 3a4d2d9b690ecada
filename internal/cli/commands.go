package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Usage       string
	Description string
	Flags       *flag.FlagSet
	Run         func(cmd *Command, args []string) error
	Subcommands []*Command

	// Err receives usage text. Set on the root and inherited by subcommands.
	Err io.Writer
}

// Execute runs the command, dispatching to subcommands if appropriate.
func (c *Command) Execute(args []string) error {
	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		for _, sub := range c.Subcommands {
			if sub.Name == args[0] {
				if sub.Err == nil {
					sub.Err = c.Err
				}
				return sub.Execute(args[1:])
			}
		}
		return fmt.Errorf("unknown command %q (see '%s')", args[0], c.Usage)
	}

	// Parse flags - reorder args so flags come before positional args
	if c.Flags != nil {
		c.Flags.SetOutput(c.Err)
		reordered := reorderFlagsFirst(args, c.Flags)
		if err := c.Flags.Parse(reordered); err != nil {
			return err
		}
		args = c.Flags.Args()
	}

	if c.Run != nil {
		return c.Run(c, args)
	}

	c.PrintUsage()
	return nil
}

// PrintUsage prints command usage to the command's error writer.
func (c *Command) PrintUsage() {
	w := c.Err
	if w == nil {
		w = io.Discard
	}
	fmt.Fprintf(w, "Usage: %s\n\n", c.Usage)
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "Commands:\n")
		maxLen := 0
		for _, sub := range c.Subcommands {
			if len(sub.Name) > maxLen {
				maxLen = len(sub.Name)
			}
		}
		for _, sub := range c.Subcommands {
			desc := sub.Description
			if idx := strings.Index(desc, "\n"); idx >= 0 {
				desc = desc[:idx]
			}
			fmt.Fprintf(w, "  %-*s  %s\n", maxLen+2, sub.Name, desc)
		}
		fmt.Fprintln(w)
	}

	if c.Flags != nil {
		fmt.Fprintf(w, "Flags:\n")
		c.Flags.SetOutput(w)
		c.Flags.PrintDefaults()
	}
}

// reorderFlagsFirst moves flag arguments before positional arguments so that
// flag.Parse, which stops at the first non-flag arg, sees them all.
func reorderFlagsFirst(args []string, fs *flag.FlagSet) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}

		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && isBoolFlag(f) {
			continue
		}
		if i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return append(flags, positional...)
}

func isBoolFlag(f *flag.Flag) bool {
	type boolFlagger interface {
		IsBoolFlag() bool
	}
	if bf, ok := f.Value.(boolFlagger); ok {
		return bf.IsBoolFlag()
	}
	return false
}

// GlobalFlags holds flags accepted before or after any command.
type GlobalFlags struct {
	Config  string
	File    string
	Now     string
	NoColor bool
	JSON    bool
	Quiet   bool
}

// valueFlags are the global flags that take an argument.
var valueFlags = map[string]func(*GlobalFlags, string){
	"--config": func(g *GlobalFlags, v string) { g.Config = v },
	"--file":   func(g *GlobalFlags, v string) { g.File = v },
	"--now":    func(g *GlobalFlags, v string) { g.Now = v },
}

// ParseGlobalFlags extracts global flags from args, returning them together
// with the remaining args.
func ParseGlobalFlags(args []string) (GlobalFlags, []string, error) {
	var g GlobalFlags
	var remaining []string
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if set, ok := valueFlags[arg]; ok {
			if i+1 >= len(args) {
				return g, nil, fmt.Errorf("flag %s requires a value", arg)
			}
			set(&g, args[i+1])
			i++
			continue
		}

		// --flag=value syntax
		if name, value, found := strings.Cut(arg, "="); found {
			if set, ok := valueFlags[name]; ok {
				set(&g, value)
				continue
			}
		}

		switch arg {
		case "--no-color":
			g.NoColor = true
		case "--json":
			g.JSON = true
		case "--quiet", "-q":
			g.Quiet = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return g, remaining, nil
}
