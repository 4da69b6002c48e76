// Package tui is a terminal browser for the exercise catalog: a home view
// with the body diagram and one scrollable page per muscle group.
package tui

import (
	"log/slog"

	"github.com/alkime/musclememory/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

// App switches between the home view and a group page.
type App struct {
	catalog *catalog.Catalog
	home    Home
	page    *Page
	width   int
	height  int
}

// New creates the app showing an unselected home view.
func New(cat *catalog.Catalog) *App {
	return &App{
		catalog: cat,
		home:    NewHome(cat),
	}
}

// Selected returns the group highlighted on the home view, if any.
func (a *App) Selected() (catalog.GroupID, bool) {
	return a.home.Selected()
}

// CurrentPage returns the group whose page is open, if any.
func (a *App) CurrentPage() (catalog.GroupID, bool) {
	if a.page == nil {
		return "", false
	}

	return a.page.Group().ID, true
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (a *App) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenGroupMsg:
		g, ok := a.catalog.Group(msg.ID)
		if !ok {
			slog.Debug("ignoring unknown group", "group", msg.ID)
			return a, nil
		}

		page := NewPage(g)
		if a.width > 0 {
			page, _ = page.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		a.page = &page

		return a, nil

	case BackMsg:
		// Leaving a page remounts the home view, so nothing is selected.
		a.page = nil
		a.home = NewHome(a.catalog)

		return a, nil
	}

	var cmd tea.Cmd
	if a.page != nil {
		var page Page
		page, cmd = a.page.Update(teaMsg)
		a.page = &page
	} else {
		a.home, cmd = a.home.Update(teaMsg)
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.page != nil {
		return a.page.View()
	}

	return a.home.View()
}
