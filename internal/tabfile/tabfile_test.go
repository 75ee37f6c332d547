package tabfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/dom"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func labels(nodes []*dom.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label()
	}
	return out
}

func TestSample(t *testing.T) {
	doc, err := Sample()
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "Tabs" {
		t.Errorf("Name: got %q, want Tabs", doc.Name)
	}
	if !doc.Host().HasAttribute(tabs.AttrFramed) {
		t.Error("sample should be framed")
	}

	w := tabs.New(doc.Host())
	if err := w.Mount(doc); err != nil {
		t.Fatal(err)
	}
	if got, _ := w.Selected(); got != 1 {
		t.Errorf("selected: got %d, want 1", got)
	}
	if got := strings.Join(labels(doc.Assigned(dom.SlotTitle)), ","); got != "Tab 1,Tab 2,Tab 3" {
		t.Errorf("titles: got %q", got)
	}
	if f := doc.Assigned("")[1].Format(); f != dom.FormatMarkdown {
		t.Errorf("panel 2 format: got %q, want markdown", f)
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "intro.md", "# Intro")
	path := writeFile(t, dir, "deck.toml", `
[[tab]]
title = "Intro"
file = "intro.md"

[[tab]]
title = "Notes"
body = "plain"
selected = true

[[tab]]
title = "More"
selected = true
`)

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "deck" {
		t.Errorf("Name should fall back to the file stem, got %q", doc.Name)
	}
	if doc.Host().HasAttribute(tabs.AttrFramed) {
		t.Error("framed should default to false")
	}

	panels := doc.Assigned("")
	if panels[0].Body() != "# Intro" || panels[0].Format() != dom.FormatMarkdown {
		t.Errorf("panel 0 = %q (%s), want markdown file contents", panels[0].Body(), panels[0].Format())
	}
	if panels[2].Body() != "" {
		t.Errorf("panel 2 body should be empty, got %q", panels[2].Body())
	}

	w := tabs.New(doc.Host())
	if err := w.Mount(doc); err != nil {
		t.Fatal(err)
	}
	if got, _ := w.Selected(); got != 2 {
		t.Errorf("selected: got %d, want 2 (last marker)", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "deck.yaml", `
title: Deck
framed: true
tabs:
  - title: One
    body: first
  - title: Two
    body: second
    selected: true
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "Deck" {
		t.Errorf("Name: got %q", doc.Name)
	}
	if got := strings.Join(labels(doc.Assigned(dom.SlotTitle)), ","); got != "One,Two" {
		t.Errorf("titles: got %q", got)
	}
	if !doc.Host().HasAttribute(tabs.AttrFramed) {
		t.Error("framed not applied")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad extension", "deck.json", `{}`, "unsupported extension"},
		{"unknown toml key", "typo.toml", "titel = \"x\"\n", "unknown keys"},
		{"unknown yaml key", "typo.yaml", "titel: x\n", "field titel not found"},
		{"empty title", "empty.toml", "[[tab]]\nbody = \"x\"\n", "title must not be empty"},
		{"body and file", "both.toml", "[[tab]]\ntitle = \"a\"\nbody = \"x\"\nfile = \"y.md\"\n", "mutually exclusive"},
		{"bad format", "format.toml", "[[tab]]\ntitle = \"a\"\nformat = \"html\"\n", "format must be"},
		{"missing panel file", "missing.toml", "[[tab]]\ntitle = \"a\"\nfile = \"nope.md\"\n", "read panel file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "absent.toml")); err == nil {
		t.Error("missing document should fail")
	}
}

func TestValidate_JoinsAllProblems(t *testing.T) {
	f := File{Tabs: []Tab{{}, {Title: "x", Format: "rtf"}}}
	err := f.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	for _, want := range []string{"tab 1: title", "tab 2: format"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	doc, err := Parse(nil, SyntaxYAML, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Children()) != 0 {
		t.Errorf("children: got %d, want 0", len(doc.Children()))
	}
}

func TestSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "intro.md", "# Intro")
	abs := writeFile(t, dir, "abs.txt", "absolute")
	path := writeFile(t, dir, "tabs.toml", `
[[tab]]
title = "Intro"
file = "intro.md"

[[tab]]
title = "Inline"
body = "inline"

[[tab]]
title = "Abs"
file = "`+filepath.ToSlash(abs)+`"
`)

	got, err := Sources(path)
	if err != nil {
		t.Fatalf("Sources: %v", err)
	}
	want := []string{path, filepath.Join(dir, "intro.md"), filepath.ToSlash(abs)}
	if len(got) != len(want) {
		t.Fatalf("Sources = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sources[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSources_UnknownExtension(t *testing.T) {
	if _, err := Sources(filepath.Join(t.TempDir(), "tabs.json")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
