package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultModelIsValid(t *testing.T) {
	c := Default()

	if len(c.Domains) == 0 {
		t.Fatal("default model has no domains")
	}
	if c.TotalActions() == 0 {
		t.Fatal("default model has no actions")
	}
	for _, d := range c.Domains {
		for _, a := range d.Actions {
			if len(a.Levels) != 5 {
				t.Errorf("action %s has %d levels, want 5", a.Code, len(a.Levels))
			}
		}
	}
	if c.UI.NotesDefault == "" || c.UI.NoRatingsMessage == "" {
		t.Error("default model missing UI strings")
	}
	if _, ok := c.Sectors["generic"]; !ok {
		t.Error("default model missing generic sector")
	}
}

func TestFindAction(t *testing.T) {
	c := Default()

	a, d, ok := c.FindAction("A1")
	if !ok {
		t.Fatal("A1 not found")
	}
	if a.Code != "A1" {
		t.Errorf("got action %s, want A1", a.Code)
	}
	if d.Code != "A" {
		t.Errorf("A1 resolved to domain %s, want A", d.Code)
	}

	if _, _, ok := c.FindAction("Z99"); ok {
		t.Error("unknown code Z99 should not resolve")
	}
}

func TestLevelFor(t *testing.T) {
	c := Default()
	a, _, _ := c.FindAction("A1")

	lvl, ok := a.LevelFor(3)
	if !ok {
		t.Fatal("level 3 not found on A1")
	}
	if lvl.MaturityLevel != "Good" {
		t.Errorf("level 3 label = %q, want Good", lvl.MaturityLevel)
	}

	if _, ok := a.LevelFor(5); ok {
		t.Error("level 5 should not exist")
	}
}

func TestSectorHint(t *testing.T) {
	c := Default()

	if c.SectorHint("finance") == c.SectorHint("generic") {
		t.Error("finance hint should differ from generic")
	}
	if c.SectorHint("") != c.Sectors["generic"] {
		t.Error("empty key should fall back to generic")
	}
	if c.SectorHint("no-such-sector") != c.Sectors["generic"] {
		t.Error("unknown key should fall back to generic")
	}
}

func TestValidationFailures(t *testing.T) {
	valid := func() *Catalog { return defaultModel() }

	tests := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{"no domains", func(c *Catalog) { c.Domains = nil }},
		{"missing domain code", func(c *Catalog) { c.Domains[0].Code = "" }},
		{"missing domain name", func(c *Catalog) { c.Domains[0].Name = "" }},
		{"empty domain", func(c *Catalog) { c.Domains[0].Actions = nil }},
		{"missing action code", func(c *Catalog) { c.Domains[0].Actions[0].Code = "" }},
		{"missing action title", func(c *Catalog) { c.Domains[0].Actions[0].Title = "" }},
		{"duplicate code across domains", func(c *Catalog) { c.Domains[1].Actions[0].Code = "A1" }},
		{"wrong level count", func(c *Catalog) {
			c.Domains[0].Actions[0].Levels = c.Domains[0].Actions[0].Levels[:4]
		}},
		{"levels out of order", func(c *Catalog) {
			c.Domains[0].Actions[0].Levels[2].Level = 4
		}},
		{"missing maturity label", func(c *Catalog) {
			c.Domains[0].Actions[0].Levels[0].MaturityLevel = ""
		}},
	}

	for _, tt := range tests {
		raw := valid()
		tt.mutate(raw)
		_, err := New(raw)
		if err == nil {
			t.Errorf("%s: expected validation error", tt.name)
			continue
		}
		var mce *MalformedCatalogError
		if !errors.As(err, &mce) {
			t.Errorf("%s: got %T, want *MalformedCatalogError", tt.name, err)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	doc := `domains:
  - code: X
    name: Test Domain
    actions:
      - code: X1
        title: Test action
        levels:
          - {level: 0, maturityLevel: "No governance", notes: "n0"}
          - {level: 1, maturityLevel: "Minimal", notes: "n1"}
          - {level: 2, maturityLevel: "Progressive", notes: "n2"}
          - {level: 3, maturityLevel: "Good", notes: "n3"}
          - {level: 4, maturityLevel: "Leading", notes: "n4", followOn: ["keep going"]}
sectors:
  generic: general guidance
ui:
  notesDefault: pick a level
  noRatingsMessage: nothing rated
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.TotalActions() != 1 {
		t.Errorf("TotalActions = %d, want 1", c.TotalActions())
	}
	a, _, ok := c.FindAction("X1")
	if !ok {
		t.Fatal("X1 not found")
	}
	if a.Levels[4].FollowOn[0] != "keep going" {
		t.Errorf("followOn = %v", a.Levels[4].FollowOn)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	doc := `{
  "domains": [{
    "code": "X", "name": "Test Domain",
    "actions": [{
      "code": "X1", "title": "Test action",
      "levels": [
        {"level": 0, "maturityLevel": "No governance", "notes": "n0"},
        {"level": 1, "maturityLevel": "Minimal", "notes": "n1"},
        {"level": 2, "maturityLevel": "Progressive", "notes": "n2"},
        {"level": 3, "maturityLevel": "Good", "notes": "n3"},
        {"level": 4, "maturityLevel": "Leading", "notes": "n4"}
      ]
    }]
  }],
  "sectors": {"generic": "general guidance"},
  "ui": {"notesDefault": "pick", "noRatingsMessage": "none"}
}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, _, ok := c.FindAction("X1"); !ok {
		t.Error("X1 not found in JSON-loaded catalog")
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if c.TotalActions() != Default().TotalActions() {
		t.Error("empty path should load the built-in model")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("{{{not yaml"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
