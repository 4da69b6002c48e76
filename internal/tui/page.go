package tui

import (
	"fmt"
	"strings"

	"github.com/alkime/musclememory/internal/catalog"
	"github.com/alkime/musclememory/internal/tui/style"
	"github.com/alkime/musclememory/pkg/collections"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BackMsg asks the app to return to the home view.
type BackMsg struct{}

func backCmd() tea.Msg {
	return BackMsg{}
}

// Page shows one muscle group's exercises and tips in a scrollable viewport.
type Page struct {
	group    catalog.Group
	viewport viewport.Model
	keys     PageKeyMap
	help     help.Model
	ready    bool
}

// NewPage creates the page for g. It renders once it knows the window size.
func NewPage(g catalog.Group) Page {
	return Page{
		group: g,
		keys:  DefaultPageKeyMap(),
		help:  help.New(),
	}
}

// Group returns the group this page shows.
func (p Page) Group() catalog.Group {
	return p.group
}

// Init implements tea.Model.
func (p Page) Init() tea.Cmd {
	return nil
}

// Update handles resizing, navigation and scrolling.
func (p Page) Update(teaMsg tea.Msg) (Page, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Back):
			return p, backCmd
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		}
	}

	if !p.ready {
		return p, nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(teaMsg)

	return p, cmd
}

func (p *Page) resize(width, height int) {
	headerHeight := 3
	footerHeight := 2
	viewportHeight := max(height-headerHeight-footerHeight, 5)
	viewportWidth := max(width-2, 20)

	p.viewport = viewport.New(viewportWidth, viewportHeight)
	p.viewport.SetContent(renderGroup(p.group, viewportWidth))
	p.ready = true
}

// View renders the page header, the scrollable catalog and help.
func (p Page) View() string {
	var sb strings.Builder

	sb.WriteString(style.Highlight(p.group.Highlight).Render(p.group.Title))
	sb.WriteString("\n")
	sb.WriteString(style.Subtitle.Render(p.group.Tagline))
	sb.WriteString("\n\n")

	if p.ready {
		sb.WriteString(p.viewport.View())
	} else {
		sb.WriteString(renderGroup(p.group, 80))
	}
	sb.WriteString("\n")
	sb.WriteString(p.help.View(p.keys))

	return sb.String()
}

// renderGroup lays out every exercise card in declared order, followed by
// the tips panel.
func renderGroup(g catalog.Group, width int) string {
	cardWidth := max(width-4, 16)
	accent := style.Highlight(g.Highlight)

	cards := collections.ApplyIndexed(g.Exercises, func(i int, ex catalog.Exercise) string {
		var sb strings.Builder
		sb.WriteString(accent.Render(fmt.Sprintf("%d. %s", i+1, ex.Name)))
		sb.WriteString("  ")
		sb.WriteString(style.Muted.Render("⏱ " + ex.Duration))
		sb.WriteString("\n")
		sb.WriteString(style.Heading.Render("INSTRUCTIONS"))
		for n, step := range ex.Instructions {
			sb.WriteString(fmt.Sprintf("\n  %d) %s", n+1, step))
		}

		return style.Card.Width(cardWidth).Render(sb.String())
	})

	tips := collections.Apply(g.Tips, func(t catalog.Tip) string {
		return fmt.Sprintf("%s %s\n   %s", t.Icon, accent.Render(t.Title), t.Body)
	})

	var sb strings.Builder
	sb.WriteString("← Back to Home\n\n")
	sb.WriteString(strings.Join(cards, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(style.Title.Render(g.TipsIcon + " " + g.TipsHeading))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(tips, "\n\n"))

	return lipgloss.NewStyle().Width(width).Render(sb.String())
}
