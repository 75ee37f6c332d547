// Package tabfile loads declarative tab documents (TOML or YAML) into a
// dom.Document ready to be mounted by a tabs.Widget.
package tabfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/dom"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabs"
)

// Syntax is the serialization of a tab document.
type Syntax string

const (
	SyntaxTOML Syntax = "toml"
	SyntaxYAML Syntax = "yaml"
)

// File is the on-disk shape of a tab document.
type File struct {
	Title  string `toml:"title" yaml:"title"`
	Framed bool   `toml:"framed" yaml:"framed"`
	Tabs   []Tab  `toml:"tab" yaml:"tabs"`
}

// Tab is one title/panel pair.
type Tab struct {
	Title    string `toml:"title" yaml:"title"`
	Body     string `toml:"body" yaml:"body"`
	File     string `toml:"file" yaml:"file"`         // panel body read from this path
	Format   string `toml:"format" yaml:"format"`     // "text" or "markdown"; inferred from File when empty
	Selected bool   `toml:"selected" yaml:"selected"` // pre-selection marker; the last one wins
}

// SyntaxFor picks the syntax from a file extension.
func SyntaxFor(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return SyntaxTOML, nil
	case ".yaml", ".yml":
		return SyntaxYAML, nil
	default:
		return "", fmt.Errorf("tabfile: %s: unsupported extension (want .toml, .yaml or .yml)", path)
	}
}

// Load reads the document at path. Panel files are resolved relative to the
// document's directory.
func Load(path string) (*dom.Document, error) {
	syntax, err := SyntaxFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tabfile: read %s: %w", path, err)
	}
	doc, err := Parse(data, syntax, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("tabfile: %s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Parse decodes data and builds a document. baseDir resolves relative panel
// files; it may be empty when no tab uses File.
func Parse(data []byte, syntax Syntax, baseDir string) (*dom.Document, error) {
	f, err := Decode(data, syntax)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.Build(baseDir)
}

// Decode unmarshals data without validating it. Unknown keys are rejected in
// both syntaxes since they are almost always typos.
func Decode(data []byte, syntax Syntax) (File, error) {
	var f File
	switch syntax {
	case SyntaxTOML:
		meta, err := toml.Decode(string(data), &f)
		if err != nil {
			return File{}, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return File{}, fmt.Errorf("unknown keys: %s (possible typos?)", strings.Join(keys, ", "))
		}
	case SyntaxYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("unknown syntax %q", syntax)
	}
	return f, nil
}

// Validate reports every problem in f, joined.
func (f File) Validate() error {
	var errs []error
	for i, t := range f.Tabs {
		if strings.TrimSpace(t.Title) == "" {
			errs = append(errs, fmt.Errorf("tab %d: title must not be empty", i+1))
		}
		if t.Body != "" && t.File != "" {
			errs = append(errs, fmt.Errorf("tab %d: body and file are mutually exclusive", i+1))
		}
		switch dom.Format(t.Format) {
		case "", dom.FormatText, dom.FormatMarkdown:
		default:
			errs = append(errs, fmt.Errorf("tab %d: format must be \"text\" or \"markdown\", got %q", i+1, t.Format))
		}
	}
	return errors.Join(errs...)
}

// Build creates the document: every title first (slot "title"), then every
// panel, mirroring how markup lists buttons before sections.
func (f File) Build(baseDir string) (*dom.Document, error) {
	doc := dom.New()
	doc.Name = f.Title
	if f.Framed {
		doc.Host().SetAttribute(tabs.AttrFramed, "")
	}

	for _, t := range f.Tabs {
		title := doc.AddTitle(t.Title)
		if t.Selected {
			title.SetAttribute(tabs.AttrSelected, "")
		}
	}
	for i, t := range f.Tabs {
		body, format := t.Body, dom.Format(t.Format)
		if t.File != "" {
			path := t.File
			if !filepath.IsAbs(path) && baseDir != "" {
				path = filepath.Join(baseDir, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("tab %d: read panel file: %w", i+1, err)
			}
			body = string(data)
			if format == "" && isMarkdownPath(path) {
				format = dom.FormatMarkdown
			}
		}
		doc.AddPanel(body, format)
	}
	return doc, nil
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Sources returns the document path followed by every panel file it
// references, resolved the same way Load resolves them. Watchers use it to
// know which files affect the rendered document.
func Sources(path string) ([]string, error) {
	syntax, err := SyntaxFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tabfile: read %s: %w", path, err)
	}
	f, err := Decode(data, syntax)
	if err != nil {
		return nil, fmt.Errorf("tabfile: %s: %w", path, err)
	}
	out := []string{path}
	for _, t := range f.Tabs {
		if t.File == "" {
			continue
		}
		p := t.File
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(path), p)
		}
		out = append(out, p)
	}
	return out, nil
}
