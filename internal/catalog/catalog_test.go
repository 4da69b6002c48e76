package catalog_test

import (
	"testing"

	"github.com/alkime/musclememory/internal/catalog"
	"github.com/alkime/musclememory/internal/colorfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()
	require.Len(t, c.Groups, 7)

	for i, id := range catalog.GroupIDs() {
		g := c.Groups[i]
		assert.Equal(t, id, g.ID, "groups must keep display order")
		assert.Equal(t, "/"+string(id), g.Route)
		assert.Len(t, g.Exercises, 6, string(id))
		assert.Len(t, g.Tips, 3, string(id))
		assert.True(t, g.HasIllustration(), string(id))

		_, known := colorfilter.ParseHex(g.Highlight)
		assert.True(t, known, "highlight %q for %s", g.Highlight, id)

		for _, ex := range g.Exercises {
			assert.Len(t, ex.Instructions, 4, ex.Name)
			assert.NotEmpty(t, ex.Duration, ex.Name)
			assert.NotEmpty(t, ex.Color, ex.Name)
		}
	}

	assert.Equal(t, 42, c.ExerciseCount())
	assert.Same(t, c, catalog.Default(), "catalog is built once")
}

func TestDefaultCatalogOrder(t *testing.T) {
	legs, ok := catalog.Default().Group(catalog.Legs)
	require.True(t, ok)

	names := make([]string, 0, len(legs.Exercises))
	for _, ex := range legs.Exercises {
		names = append(names, ex.Name)
	}
	assert.Equal(t, []string{
		"Bulgarian Split Squats", "Calf Raises", "Deadlifts", "Lunges", "Squats", "Wall Sit",
	}, names)
	assert.Equal(t, "Place rear foot on elevated surface behind you", legs.Exercises[0].Instructions[0])
	assert.Equal(t, "3 sets x 30-60 seconds", legs.Exercises[5].Duration)
}

func TestGroupLookup(t *testing.T) {
	c := catalog.Default()

	g, ok := c.GroupByRoute("/chest")
	require.True(t, ok)
	assert.Equal(t, catalog.Chest, g.ID)
	assert.Equal(t, "CHEST WORKOUTS", g.Title)

	_, ok = c.GroupByRoute("/neck")
	assert.False(t, ok)

	_, ok = c.Group(catalog.GroupID("neck"))
	assert.False(t, ok)
}

func TestParseGroupID(t *testing.T) {
	id, ok := catalog.ParseGroupID("shoulders")
	assert.True(t, ok)
	assert.Equal(t, catalog.Shoulders, id)

	_, ok = catalog.ParseGroupID("Shoulders")
	assert.False(t, ok)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "unknown group",
			doc: `
[[group]]
id = "neck"
route = "/neck"
`,
			err: catalog.ErrUnknownGroup,
		},
		{
			name: "duplicate group",
			doc: `
[[group]]
id = "abs"
route = "/abs"

[[group]]
id = "abs"
route = "/abs-again"
`,
			err: catalog.ErrDuplicateGroup,
		},
		{
			name: "duplicate route",
			doc: `
[[group]]
id = "abs"
route = "/core"

[[group]]
id = "back"
route = "/core"
`,
			err: catalog.ErrDuplicateGroup,
		},
		{
			name: "duplicate exercise",
			doc: `
[[group]]
id = "legs"
route = "/legs"

[[group.exercise]]
name = "Squats"
instructions = ["down", "up"]

[[group.exercise]]
name = "Squats"
instructions = ["down", "up"]
`,
			err: catalog.ErrDuplicateExercise,
		},
		{
			name: "no instructions",
			doc: `
[[group]]
id = "legs"
route = "/legs"

[[group.exercise]]
name = "Squats"
`,
			err: catalog.ErrEmptyInstructions,
		},
		{
			name: "empty route",
			doc: `
[[group]]
id = "abs"
route = ""
`,
			err: catalog.ErrInvalidRoute,
		},
		{
			name: "relative route",
			doc: `
[[group]]
id = "abs"
route = "abs"
`,
			err: catalog.ErrInvalidRoute,
		},
		{
			name: "home route",
			doc: `
[[group]]
id = "abs"
route = "/"
`,
			err: catalog.ErrInvalidRoute,
		},
		{
			name: "health route",
			doc: `
[[group]]
id = "abs"
route = "/health"
`,
			err: catalog.ErrInvalidRoute,
		},
		{
			name: "static route",
			doc: `
[[group]]
id = "abs"
route = "/static"
`,
			err: catalog.ErrInvalidRoute,
		},
		{
			name: "images route",
			doc: `
[[group]]
id = "abs"
route = "/images"
`,
			err: catalog.ErrInvalidRoute,
		},
		{
			name: "nested route",
			doc: `
[[group]]
id = "abs"
route = "/abs/core"
`,
			err: catalog.ErrInvalidRoute,
		},
		{
			name: "wildcard route",
			doc: `
[[group]]
id = "abs"
route = "/:group"
`,
			err: catalog.ErrInvalidRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := catalog.Parse([]byte(`
[[group]]
id = "abs"
route = "/abs"
colour = "#facc15"
`))
	assert.Error(t, err)
}

func TestParseKeepsUnknownHighlight(t *testing.T) {
	c, err := catalog.Parse([]byte(`
[[group]]
id = "abs"
route = "/abs"
highlight = "#000000"
`))
	require.NoError(t, err)

	g, ok := c.Group(catalog.Abs)
	require.True(t, ok)
	assert.Equal(t, colorfilter.Default, colorfilter.Resolve(g.Highlight))
	assert.False(t, g.HasIllustration())
}
