package tui

import (
	"testing"
	"time"

	"github.com/alkime/musclememory/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppBrowseAndReturn(t *testing.T) {
	tm := teatest.NewTestModel(t, New(catalog.Default()), teatest.WithInitialTermSize(100, 40))
	checker := defaultChecker()

	checker.checkString(t, tm, "Select a muscle")

	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	checker.checkString(t, tm, "Abs muscle diagram")

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	checker.checkString(t, tm, "ABS WORKOUTS")

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	checker.checkString(t, tm, "Select a muscle")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	app, ok := fm.(*App)
	require.True(t, ok)

	_, open := app.CurrentPage()
	assert.False(t, open)
	_, selected := app.Selected()
	assert.False(t, selected, "returning home remounts it unselected")
}

func TestAppOpenUnknownGroup(t *testing.T) {
	app := New(catalog.Default())

	_, cmd := app.Update(OpenGroupMsg{ID: catalog.GroupID("neck")})
	assert.Nil(t, cmd)

	_, open := app.CurrentPage()
	assert.False(t, open)
}

func TestAppPageSizedFromWindow(t *testing.T) {
	app := New(catalog.Default())
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	app.Update(OpenGroupMsg{ID: catalog.Back})

	id, open := app.CurrentPage()
	require.True(t, open)
	assert.Equal(t, catalog.Back, id)
	assert.Contains(t, app.View(), "BACK WORKOUTS")
	assert.Contains(t, app.View(), "esc back to home")
}
