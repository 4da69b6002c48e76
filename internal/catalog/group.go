package catalog

// GroupID identifies one of the seven muscle groups.
type GroupID string

const (
	Abs       GroupID = "abs"
	Arms      GroupID = "arms"
	Back      GroupID = "back"
	Cardio    GroupID = "cardio"
	Chest     GroupID = "chest"
	Legs      GroupID = "legs"
	Shoulders GroupID = "shoulders"
)

// GroupIDs returns every known group ID in display order.
func GroupIDs() []GroupID {
	return []GroupID{Abs, Arms, Back, Cardio, Chest, Legs, Shoulders}
}

// ParseGroupID returns the GroupID for s if it is one of the known groups.
func ParseGroupID(s string) (GroupID, bool) {
	for _, id := range GroupIDs() {
		if string(id) == s {
			return id, true
		}
	}

	return "", false
}

// Exercise is a single exercise card.
type Exercise struct {
	Name string `toml:"name"`
	// Duration is free-form text such as "3 sets x 8-12 reps".
	Duration     string   `toml:"duration"`
	Instructions []string `toml:"instructions"`
	// Color is an opaque style token rendered as a CSS class.
	Color string `toml:"color"`
}

// Tip is one entry in a group page's tips panel.
type Tip struct {
	Icon  string `toml:"icon"`
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Group is a muscle group: its home page navigation entry and its own page.
type Group struct {
	ID    GroupID `toml:"id"`
	Name  string  `toml:"name"`
	Route string  `toml:"route"`

	// Home page presentation
	Gradient     string `toml:"gradient"`
	Illustration string `toml:"illustration"`
	Highlight    string `toml:"highlight"`

	// Group page presentation
	Theme       string `toml:"theme"`
	Title       string `toml:"title"`
	Tagline     string `toml:"tagline"`
	Background  string `toml:"background"`
	TipsHeading string `toml:"tips_heading"`
	TipsIcon    string `toml:"tips_icon"`
	Tips        []Tip  `toml:"tip"`

	Exercises []Exercise `toml:"exercise"`
}

// HasIllustration reports whether the group references an illustration asset.
func (g Group) HasIllustration() bool {
	return g.Illustration != ""
}

// Site holds page metadata and home page copy.
type Site struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Keywords    []string `toml:"keywords"`
	Author      string   `toml:"author"`
	Icon        string   `toml:"icon"`
	Heading     string   `toml:"heading"`
	Tagline     string   `toml:"tagline"`
	ListHeading string   `toml:"list_heading"`
	Placeholder string   `toml:"placeholder"`
	Background  string   `toml:"background"`
}
