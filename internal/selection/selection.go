// Package selection tracks which muscle group the home page highlights.
//
// A Selection is either unselected or holds exactly one group. Pointer-enter
// and touch-start select a group from any state; nothing returns to the
// unselected state except constructing a new Selection when the home view
// is mounted again.
package selection

import (
	"strconv"

	"github.com/alkime/musclememory/internal/catalog"
	"github.com/alkime/musclememory/internal/colorfilter"
	"github.com/alkime/musclememory/pkg/collections"
)

const (
	// HiddenOpacity and HiddenScale describe an illustration that is not selected.
	HiddenOpacity = 0.0
	HiddenScale   = 0.8
)

// Selection is the home page's highlighted group. It is owned by one view
// and is not safe for concurrent use.
type Selection struct {
	groups  []catalog.Group
	current catalog.GroupID
}

// New returns an unselected Selection over the given groups.
func New(groups []catalog.Group) *Selection {
	return &Selection{groups: groups}
}

// PointerEnter selects the group under the pointer. Unknown groups are
// ignored and reported as false.
func (s *Selection) PointerEnter(id catalog.GroupID) bool {
	return s.selectGroup(id)
}

// TouchStart selects the touched group. Unknown groups are ignored and
// reported as false.
func (s *Selection) TouchStart(id catalog.GroupID) bool {
	return s.selectGroup(id)
}

func (s *Selection) selectGroup(id catalog.GroupID) bool {
	for _, g := range s.groups {
		if g.ID == id {
			s.current = id
			return true
		}
	}

	return false
}

// Current returns the selected group, or false when unselected.
func (s *Selection) Current() (catalog.GroupID, bool) {
	return s.current, s.current != ""
}

// IsSelected reports whether id is the selected group.
func (s *Selection) IsSelected(id catalog.GroupID) bool {
	return s.current != "" && s.current == id
}

// Illustration is the render state of one group's body diagram.
type Illustration struct {
	Group     catalog.GroupID
	Src       string
	Alt       string
	Highlight string
	Visible   bool
	Opacity   float64
	Scale     float64
	// Filter recolors the black diagram and adds the highlight glow.
	Filter string
}

// NavItem is the render state of one group's navigation button.
type NavItem struct {
	Group     catalog.GroupID
	Name      string
	Href      string
	Gradient  string
	Highlight string
	Selected  bool
	// Glow is a CSS filter; "none" unless the item is selected.
	Glow string
}

// View is everything the home page needs to draw the current state.
type View struct {
	Selected      catalog.GroupID
	Placeholder   bool
	Nav           []NavItem
	Illustrations []Illustration
}

// View renders the current state. At most one illustration is visible.
func (s *Selection) View() View {
	withArt := make([]catalog.Group, 0, len(s.groups))
	for _, g := range s.groups {
		if g.HasIllustration() {
			withArt = append(withArt, g)
		}
	}

	return View{
		Selected:      s.current,
		Placeholder:   s.current == "",
		Nav:           collections.Apply(s.groups, s.navItem),
		Illustrations: collections.Apply(withArt, s.illustration),
	}
}

func (s *Selection) navItem(g catalog.Group) NavItem {
	item := NavItem{
		Group:     g.ID,
		Name:      g.Name,
		Href:      g.Route,
		Gradient:  g.Gradient,
		Highlight: g.Highlight,
		Selected:  s.IsSelected(g.ID),
		Glow:      "none",
	}
	if item.Selected {
		item.Glow = colorfilter.NavGlow(g.Highlight)
	}

	return item
}

func (s *Selection) illustration(g catalog.Group) Illustration {
	ill := Illustration{
		Group:     g.ID,
		Src:       g.Illustration,
		Alt:       g.Name + " muscle diagram",
		Highlight: g.Highlight,
		Opacity:   HiddenOpacity,
		Scale:     HiddenScale,
		Filter:    colorfilter.IllustrationStyle(g.Highlight),
	}
	if s.IsSelected(g.ID) {
		ill.Visible = true
		ill.Opacity = 1
		ill.Scale = 1
	}

	return ill
}

// Motion is the inline CSS for the illustration's opacity and scale, the
// values the show and hide transition animates between.
func (ill Illustration) Motion() string {
	return "opacity: " + formatFloat(ill.Opacity) + "; transform: scale(" + formatFloat(ill.Scale) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// VisibleIllustrations returns the illustrations currently shown.
func (v View) VisibleIllustrations() []Illustration {
	var out []Illustration
	for _, ill := range v.Illustrations {
		if ill.Visible {
			out = append(out, ill)
		}
	}

	return out
}
