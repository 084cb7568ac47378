package catalog

import "fmt"

// Level is one of the five maturity tiers defined for an action.
type Level struct {
	Level         int      `yaml:"level" json:"level"`
	MaturityLevel string   `yaml:"maturityLevel" json:"maturityLevel"`
	Notes         string   `yaml:"notes" json:"notes"`
	FollowOn      []string `yaml:"followOn" json:"followOn"`
}

// Action is a single assessable governance practice, rated 0-4.
type Action struct {
	Code   string  `yaml:"code" json:"code"`
	Title  string  `yaml:"title" json:"title"`
	Text   string  `yaml:"actionText" json:"actionText"`
	Levels []Level `yaml:"levels" json:"levels"`
}

// LevelFor returns the level definition for a value, if the action defines it.
func (a *Action) LevelFor(value int) (*Level, bool) {
	for i := range a.Levels {
		if a.Levels[i].Level == value {
			return &a.Levels[i], true
		}
	}
	return nil, false
}

// Domain is a thematic grouping of actions. Slice order is display order.
type Domain struct {
	Code    string   `yaml:"code" json:"code"`
	Name    string   `yaml:"name" json:"name"`
	Actions []Action `yaml:"actions" json:"actions"`
}

// UIStrings holds display text shipped with the model data.
type UIStrings struct {
	NotesDefault     string `yaml:"notesDefault" json:"notesDefault"`
	NoRatingsMessage string `yaml:"noRatingsMessage" json:"noRatingsMessage"`
}

// Catalog is the immutable maturity model: domains, actions, levels, plus
// sector hints and UI strings. Read-only after Load.
type Catalog struct {
	Domains []Domain          `yaml:"domains" json:"domains"`
	Sectors map[string]string `yaml:"sectors" json:"sectors"`
	UI      UIStrings         `yaml:"ui" json:"ui"`

	index        map[string]actionRef
	totalActions int
}

type actionRef struct {
	domain int
	action int
}

// MalformedCatalogError is returned when model data fails validation.
type MalformedCatalogError struct {
	Reason string
}

func (e *MalformedCatalogError) Error() string {
	return fmt.Sprintf("malformed catalog: %s", e.Reason)
}

// levelCount is the fixed number of maturity tiers per action.
const levelCount = 5

// New validates raw model data and builds the action index.
func New(c *Catalog) (*Catalog, error) {
	if len(c.Domains) == 0 {
		return nil, &MalformedCatalogError{Reason: "no domains defined"}
	}

	c.index = make(map[string]actionRef)
	c.totalActions = 0

	for di := range c.Domains {
		d := &c.Domains[di]
		if d.Code == "" || d.Name == "" {
			return nil, &MalformedCatalogError{Reason: fmt.Sprintf("domain %d missing code or name", di)}
		}
		if len(d.Actions) == 0 {
			return nil, &MalformedCatalogError{Reason: fmt.Sprintf("domain %s has no actions", d.Code)}
		}

		for ai := range d.Actions {
			a := &d.Actions[ai]
			if a.Code == "" || a.Title == "" {
				return nil, &MalformedCatalogError{Reason: fmt.Sprintf("domain %s action %d missing code or title", d.Code, ai)}
			}
			if _, exists := c.index[a.Code]; exists {
				return nil, &MalformedCatalogError{Reason: fmt.Sprintf("duplicate action code %s", a.Code)}
			}
			if len(a.Levels) != levelCount {
				return nil, &MalformedCatalogError{Reason: fmt.Sprintf("action %s has %d levels, want %d", a.Code, len(a.Levels), levelCount)}
			}
			for li, lvl := range a.Levels {
				if lvl.Level != li {
					return nil, &MalformedCatalogError{Reason: fmt.Sprintf("action %s level %d out of order (got %d)", a.Code, li, lvl.Level)}
				}
				if lvl.MaturityLevel == "" {
					return nil, &MalformedCatalogError{Reason: fmt.Sprintf("action %s level %d missing maturity label", a.Code, li)}
				}
			}

			c.index[a.Code] = actionRef{domain: di, action: ai}
			c.totalActions++
		}
	}

	return c, nil
}

// FindAction resolves an action code to its action and owning domain.
func (c *Catalog) FindAction(code string) (*Action, *Domain, bool) {
	ref, ok := c.index[code]
	if !ok {
		return nil, nil, false
	}
	d := &c.Domains[ref.domain]
	return &d.Actions[ref.action], d, true
}

// TotalActions is the catalog-wide action count.
func (c *Catalog) TotalActions() int {
	return c.totalActions
}

// SectorHint returns the hint text for a sector key, falling back to generic.
func (c *Catalog) SectorHint(key string) string {
	if key == "" {
		key = "generic"
	}
	if hint, ok := c.Sectors[key]; ok {
		return hint
	}
	return c.Sectors["generic"]
}
