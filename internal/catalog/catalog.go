// Package catalog holds the exercise catalog for every muscle group.
//
// The catalog is authored as a TOML document embedded in the binary, parsed
// once on first use and never mutated afterwards. Callers must treat every
// slice reachable from a Catalog as read-only.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var document []byte

var (
	// ErrUnknownGroup is returned when a group ID is not one of the seven known groups.
	ErrUnknownGroup = errors.New("unknown muscle group")
	// ErrDuplicateGroup is returned when a group ID or route appears twice.
	ErrDuplicateGroup = errors.New("duplicate muscle group")
	// ErrDuplicateExercise is returned when an exercise name repeats within a group.
	ErrDuplicateExercise = errors.New("duplicate exercise")
	// ErrEmptyInstructions is returned when an exercise has no instruction steps.
	ErrEmptyInstructions = errors.New("exercise has no instructions")
	// ErrInvalidRoute is returned when a group route is not a single path
	// segment or collides with a route the server reserves.
	ErrInvalidRoute = errors.New("invalid group route")
)

// routePattern is one lowercase path segment, with no gin wildcards.
var routePattern = regexp.MustCompile(`^/[a-z0-9][a-z0-9-]*$`)

// reservedRoutes are served by the server itself.
var reservedRoutes = map[string]struct{}{
	"/health": {},
	"/static": {},
	"/images": {},
}

func validateRoute(g Group) error {
	if !routePattern.MatchString(g.Route) {
		return fmt.Errorf("group %q route %q: %w", g.ID, g.Route, ErrInvalidRoute)
	}
	if _, reserved := reservedRoutes[g.Route]; reserved {
		return fmt.Errorf("group %q route %q is reserved: %w", g.ID, g.Route, ErrInvalidRoute)
	}

	return nil
}

// Catalog is the site metadata plus every muscle group in display order.
type Catalog struct {
	Site   Site
	Groups []Group

	byID    map[GroupID]int
	byRoute map[string]int
}

var loadDefault = sync.OnceValue(func() *Catalog {
	c, err := Parse(document)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}

	return c
})

// Default returns the embedded catalog.
func Default() *Catalog {
	return loadDefault()
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var raw struct {
		Site   Site    `toml:"site"`
		Groups []Group `toml:"group"`
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &Catalog{
		Site:    raw.Site,
		Groups:  raw.Groups,
		byID:    make(map[GroupID]int, len(raw.Groups)),
		byRoute: make(map[string]int, len(raw.Groups)),
	}

	for i, g := range c.Groups {
		if _, ok := ParseGroupID(string(g.ID)); !ok {
			return nil, fmt.Errorf("group %q: %w", g.ID, ErrUnknownGroup)
		}
		if err := validateRoute(g); err != nil {
			return nil, err
		}
		if _, dup := c.byID[g.ID]; dup {
			return nil, fmt.Errorf("group %q: %w", g.ID, ErrDuplicateGroup)
		}
		if _, dup := c.byRoute[g.Route]; dup {
			return nil, fmt.Errorf("route %q: %w", g.Route, ErrDuplicateGroup)
		}

		if err := validateExercises(g); err != nil {
			return nil, err
		}

		c.byID[g.ID] = i
		c.byRoute[g.Route] = i
	}

	return c, nil
}

func validateExercises(g Group) error {
	names := make(map[string]struct{}, len(g.Exercises))
	for _, ex := range g.Exercises {
		if _, dup := names[ex.Name]; dup {
			return fmt.Errorf("group %q exercise %q: %w", g.ID, ex.Name, ErrDuplicateExercise)
		}
		names[ex.Name] = struct{}{}

		if len(ex.Instructions) == 0 {
			return fmt.Errorf("group %q exercise %q: %w", g.ID, ex.Name, ErrEmptyInstructions)
		}
	}

	return nil
}

// Group returns the group with the given ID.
func (c *Catalog) Group(id GroupID) (Group, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Group{}, false
	}

	return c.Groups[i], true
}

// GroupByRoute returns the group served at route (e.g. "/legs").
func (c *Catalog) GroupByRoute(route string) (Group, bool) {
	i, ok := c.byRoute[route]
	if !ok {
		return Group{}, false
	}

	return c.Groups[i], true
}

// ExerciseCount returns the total number of exercises across all groups.
func (c *Catalog) ExerciseCount() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Exercises)
	}

	return n
}
