package tui

import (
	"strings"

	"github.com/alkime/musclememory/internal/catalog"
	"github.com/alkime/musclememory/internal/selection"
	"github.com/alkime/musclememory/internal/tui/style"
	"github.com/alkime/musclememory/pkg/collections"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// navTop is the screen row of the first navigation entry. The header above
// it is heading, tagline, blank, list heading, blank.
const navTop = 5

// OpenGroupMsg asks the app to show a group's page.
type OpenGroupMsg struct {
	ID catalog.GroupID
}

func openGroupCmd(id catalog.GroupID) tea.Cmd {
	return func() tea.Msg {
		return OpenGroupMsg{ID: id}
	}
}

// Home is the terminal version of the home page. Focusing a row with the
// keyboard or moving the mouse over it is a pointer-enter; clicking a row is
// a touch-start followed by opening the group.
type Home struct {
	site   catalog.Site
	groups []catalog.Group
	sel    *selection.Selection
	cursor int
	keys   HomeKeyMap
	help   help.Model
}

// NewHome mounts a home view with nothing selected.
func NewHome(cat *catalog.Catalog) Home {
	return Home{
		site:   cat.Site,
		groups: cat.Groups,
		sel:    selection.New(cat.Groups),
		cursor: -1,
		keys:   DefaultHomeKeyMap(),
		help:   help.New(),
	}
}

// Selected returns the highlighted group, if any.
func (h Home) Selected() (catalog.GroupID, bool) {
	return h.sel.Current()
}

// Init implements tea.Model.
func (h Home) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and mouse input.
func (h Home) Update(teaMsg tea.Msg) (Home, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Quit):
			return h, tea.Quit
		case key.Matches(msg, h.keys.Up):
			h.focus(h.cursor - 1)
		case key.Matches(msg, h.keys.Down):
			h.focus(h.cursor + 1)
		case key.Matches(msg, h.keys.Open):
			if id, ok := h.sel.Current(); ok {
				return h, openGroupCmd(id)
			}
		}

	case tea.MouseMsg:
		row, ok := h.rowAt(msg.X, msg.Y)
		if !ok {
			return h, nil
		}

		switch {
		case msg.Action == tea.MouseActionMotion:
			h.cursor = row
			h.sel.PointerEnter(h.groups[row].ID)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			h.cursor = row
			h.sel.TouchStart(h.groups[row].ID)
			return h, openGroupCmd(h.groups[row].ID)
		}
	}

	return h, nil
}

func (h *Home) focus(i int) {
	if len(h.groups) == 0 {
		return
	}

	h.cursor = collections.Clamp(i, 0, len(h.groups)-1)
	h.sel.PointerEnter(h.groups[h.cursor].ID)
}

// rowAt maps a screen cell to a navigation row. Cells outside the nav
// column, including the body diagram beside it, are not rows.
func (h Home) rowAt(x, y int) (int, bool) {
	if x < 0 || x >= lipgloss.Width(h.renderNav(h.sel.View())) {
		return 0, false
	}

	row := y - navTop
	if row < 0 || row >= len(h.groups) {
		return 0, false
	}

	return row, true
}

// View renders the navigation list beside the body diagram panel.
func (h Home) View() string {
	view := h.sel.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top, h.renderNav(view), "    ", h.renderStage(view))

	return body + "\n\n" + h.help.View(h.keys)
}

// renderNav renders the left column: header, list heading and one row per group.
func (h Home) renderNav(view selection.View) string {
	var left strings.Builder
	left.WriteString(style.Title.Render(h.site.Heading))
	left.WriteString("\n")
	left.WriteString(style.Subtitle.Render(h.site.Tagline))
	left.WriteString("\n\n")
	left.WriteString(style.Heading.Render(h.site.ListHeading))
	left.WriteString("\n\n")

	rows := collections.Apply(view.Nav, renderNavItem)
	left.WriteString(strings.Join(rows, "\n"))

	return left.String()
}

func renderNavItem(item selection.NavItem) string {
	if item.Selected {
		return style.Highlight(item.Highlight).Render("✦ " + padName(item.Name) + " →")
	}

	return "  " + style.Label.Render(padName(item.Name)) + style.Muted.Render(" →")
}

func padName(name string) string {
	const width = 12
	if len(name) >= width {
		return name
	}

	return name + strings.Repeat(" ", width-len(name))
}

func (h Home) renderStage(view selection.View) string {
	if view.Placeholder {
		return style.Stage.Render("👤\n\n" + style.Placeholder.Render(h.site.Placeholder))
	}

	for _, g := range h.groups {
		if g.ID != view.Selected {
			continue
		}

		caption := style.Highlight(g.Highlight).Render(g.Name + " muscle diagram")
		return style.Glow(g.Highlight).Render(renderBody(g) + "\n\n" + caption)
	}

	return style.Stage.Render("")
}
