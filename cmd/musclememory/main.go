package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alkime/musclememory/internal/catalog"
	"github.com/alkime/musclememory/internal/colorfilter"
	"github.com/alkime/musclememory/internal/logger"
	"github.com/alkime/musclememory/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// CLI defines the musclememory command structure.
type CLI struct {
	Debug bool `flag:"" env:"MUSCLEMEMORY_DEBUG" help:"Enable debug logging"`

	// Default TUI command (runs when no subcommand given)
	Browse BrowseCmd `cmd:"" default:"withargs" help:"Browse the exercise catalog in the terminal"`

	// Subcommands
	List   ListCmd   `cmd:"" help:"Print the exercise catalog"`
	Filter FilterCmd `cmd:"" help:"Print the CSS filter chain for a highlight color"`
}

// BrowseCmd runs the terminal browser.
type BrowseCmd struct{}

// Run executes the browse command.
func (c *BrowseCmd) Run(cat *catalog.Catalog) error {
	p := tea.NewProgram(tui.New(cat), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	return nil
}

// ListCmd prints every group, or a single group, with its exercises.
type ListCmd struct {
	Group string `arg:"" optional:"" help:"Group id (abs, arms, back, cardio, chest, legs, shoulders)"`
}

// Run executes the list command.
func (c *ListCmd) Run(cat *catalog.Catalog) error {
	return writeList(os.Stdout, cat, c.Group)
}

// FilterCmd resolves a highlight color to its CSS filter chain.
type FilterCmd struct {
	Hex string `arg:"" required:"" help:"Highlight color, e.g. #a855f7"`
}

// Run executes the filter command.
//
//nolint:unparam // error return required by Kong interface
func (c *FilterCmd) Run() error {
	writeFilter(os.Stdout, c.Hex)
	return nil
}

func writeList(w io.Writer, cat *catalog.Catalog, group string) error {
	groups := cat.Groups
	if group != "" {
		id, ok := catalog.ParseGroupID(group)
		if !ok {
			return fmt.Errorf("%w: %s", catalog.ErrUnknownGroup, group)
		}

		g, ok := cat.Group(id)
		if !ok {
			return fmt.Errorf("%w: %s", catalog.ErrUnknownGroup, group)
		}
		groups = []catalog.Group{g}
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "%s (%s)\n", g.Title, g.Route)
		for n, ex := range g.Exercises {
			fmt.Fprintf(w, "  %d. %s [%s]\n", n+1, ex.Name, ex.Duration)
			for s, step := range ex.Instructions {
				fmt.Fprintf(w, "     %d) %s\n", s+1, step)
			}
		}
	}

	return nil
}

func writeFilter(w io.Writer, hex string) {
	c, ok := colorfilter.ParseHex(hex)
	if !ok {
		slog.Debug("unknown highlight color, using default filter", "hex", hex)
		fmt.Fprintln(w, colorfilter.Resolve(hex))

		return
	}

	fmt.Fprintf(w, "%s\t%s\n", c, c.Filter())
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("musclememory"),
		kong.Description("Exercise catalog by muscle group."),
		kong.Bind(catalog.Default()),
	)

	// Set up text-based logger for CLI output
	logger.SetupTextLogger(os.Stderr, cli.Debug)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
