package tui

import (
	"testing"

	"github.com/alkime/musclememory/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func motion(row int) tea.MouseMsg {
	return tea.MouseMsg{X: 4, Y: navTop + row, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func TestHomeStartsUnselected(t *testing.T) {
	h := NewHome(catalog.Default())

	_, ok := h.Selected()
	assert.False(t, ok)

	view := h.View()
	assert.Contains(t, view, "MUSCLE MEMORY")
	assert.Contains(t, view, "Select a muscle group")
	assert.NotContains(t, view, "✦")
	assert.NotContains(t, view, "muscle diagram")
	for _, g := range catalog.Default().Groups {
		assert.Contains(t, view, g.Name)
	}
}

func TestHomeKeyboardFocus(t *testing.T) {
	h := NewHome(catalog.Default())

	h, _ = h.Update(tea.KeyMsg{Type: tea.KeyDown})
	id, ok := h.Selected()
	require.True(t, ok)
	assert.Equal(t, catalog.Abs, id)

	for range 5 {
		h, _ = h.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	id, _ = h.Selected()
	assert.Equal(t, catalog.Legs, id)

	view := h.View()
	assert.Contains(t, view, "✦ Legs")
	assert.Contains(t, view, "Legs muscle diagram")
	assert.NotContains(t, view, "Select a muscle group")
	assert.NotContains(t, view, "Abs muscle diagram")

	// Focus stops at the last entry.
	for range 3 {
		h, _ = h.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	id, _ = h.Selected()
	assert.Equal(t, catalog.Shoulders, id)
}

func TestHomeUpFromNothingSelectsFirst(t *testing.T) {
	h := NewHome(catalog.Default())
	h, _ = h.Update(tea.KeyMsg{Type: tea.KeyUp})

	id, ok := h.Selected()
	require.True(t, ok)
	assert.Equal(t, catalog.Abs, id)
}

func TestHomeMouseHover(t *testing.T) {
	h := NewHome(catalog.Default())

	h, _ = h.Update(motion(5))
	id, _ := h.Selected()
	assert.Equal(t, catalog.Legs, id)

	h, _ = h.Update(motion(4))
	id, _ = h.Selected()
	assert.Equal(t, catalog.Chest, id)

	// Moving off the list keeps the last selection.
	h, _ = h.Update(tea.MouseMsg{X: 60, Y: 0, Action: tea.MouseActionMotion})
	h, _ = h.Update(motion(40))
	id, ok := h.Selected()
	require.True(t, ok)
	assert.Equal(t, catalog.Chest, id)
	assert.Contains(t, h.View(), "Chest muscle diagram")
}

func TestHomeIgnoresPointerOverBodyDiagram(t *testing.T) {
	h := NewHome(catalog.Default())

	// Same rows as the nav list, but over the stage beside it.
	h, cmd := h.Update(tea.MouseMsg{X: 70, Y: navTop + 5, Action: tea.MouseActionMotion})
	assert.Nil(t, cmd)
	_, ok := h.Selected()
	assert.False(t, ok)

	h, _ = h.Update(motion(4))
	h, cmd = h.Update(tea.MouseMsg{X: 90, Y: navTop + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)

	h, _ = h.Update(tea.MouseMsg{X: 30, Y: navTop + 6, Action: tea.MouseActionMotion})
	id, ok := h.Selected()
	require.True(t, ok)
	assert.Equal(t, catalog.Chest, id)
	assert.Contains(t, h.View(), "Chest muscle diagram")
}

func TestHomeClickOpensGroup(t *testing.T) {
	h := NewHome(catalog.Default())

	h, cmd := h.Update(tea.MouseMsg{X: 4, Y: navTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenGroupMsg{ID: catalog.Arms}, cmd())

	id, _ := h.Selected()
	assert.Equal(t, catalog.Arms, id)
}

func TestHomeOpenNeedsSelection(t *testing.T) {
	h := NewHome(catalog.Default())

	h, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	h, _ = h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	_, cmd = h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenGroupMsg{ID: catalog.Abs}, cmd())
}

func TestBodyDiagramTintsGroupRows(t *testing.T) {
	legs, ok := catalog.Default().Group(catalog.Legs)
	require.True(t, ok)

	body := renderBody(legs)
	assert.Contains(t, body, "/  |  \\")
	assert.Contains(t, body, "♥")
}
