package tui

import (
	"strings"

	"github.com/alkime/musclememory/internal/catalog"
	"github.com/alkime/musclememory/internal/tui/style"
)

// bodyLine is one row of the terminal body diagram and the groups it shows.
type bodyLine struct {
	art    string
	groups []catalog.GroupID
}

var bodyDiagram = []bodyLine{
	{art: `      .-.      `},
	{art: `      '-'      `},
	{art: `   ___| |___   `, groups: []catalog.GroupID{catalog.Shoulders, catalog.Back}},
	{art: `  /   \_/   \  `, groups: []catalog.GroupID{catalog.Shoulders, catalog.Chest, catalog.Back}},
	{art: ` / /|  ♥  |\ \ `, groups: []catalog.GroupID{catalog.Arms, catalog.Chest, catalog.Cardio}},
	{art: `/ / | === | \ \`, groups: []catalog.GroupID{catalog.Arms, catalog.Abs, catalog.Back}},
	{art: `\_\ | === | /_/`, groups: []catalog.GroupID{catalog.Arms, catalog.Abs}},
	{art: `     \___/     `},
	{art: `     /   \     `, groups: []catalog.GroupID{catalog.Legs}},
	{art: `    /  |  \    `, groups: []catalog.GroupID{catalog.Legs}},
	{art: `   /   |   \   `, groups: []catalog.GroupID{catalog.Legs}},
	{art: `  ^^   |   ^^  `, groups: []catalog.GroupID{catalog.Legs}},
}

// renderBody draws the body diagram for g: rows covering the group are
// tinted in its highlight color, the rest are muted.
func renderBody(g catalog.Group) string {
	tint := style.Highlight(g.Highlight)

	lines := make([]string, 0, len(bodyDiagram))
	for _, bl := range bodyDiagram {
		if covers(bl.groups, g.ID) {
			lines = append(lines, tint.Render(bl.art))
		} else {
			lines = append(lines, style.Muted.Render(bl.art))
		}
	}

	return strings.Join(lines, "\n")
}

func covers(groups []catalog.GroupID, id catalog.GroupID) bool {
	for _, g := range groups {
		if g == id {
			return true
		}
	}

	return false
}
