package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/config"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/dom"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabfile"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabs"
)

// sampleDocName is the document written by init.
const sampleDocName = "tabs.toml"

// viewOptions carries the view command's arguments and flag overrides.
type viewOptions struct {
	ConfigPath string
	DocPath    string
	Watch      bool
	Framed     bool
}

// executeView loads config and the document, then runs the TUI until the
// user quits or the process is signalled.
func executeView(opts viewOptions) error {
	if err := checkTerminal(os.Stdout); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Watch {
		cfg.Watch.Enabled = true
	}
	if opts.Framed {
		cfg.TUI.Framed = true
	}

	doc, err := tabfile.Load(opts.DocPath)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	return runTUI(ctx, cfg, opts.DocPath, doc)
}

// actionKind names an inspect interaction.
type actionKind string

const (
	actionClick  actionKind = "click"
	actionKey    actionKind = "key"
	actionSelect actionKind = "select"
)

// action is one parsed --do interaction.
type action struct {
	kind  actionKind
	index int
	key   tabs.Key
	raw   string
}

// parseActions parses every --do value, reporting all malformed ones.
func parseActions(specs []string) ([]action, error) {
	var (
		out  []action
		errs []error
	)
	for _, s := range specs {
		a, err := parseAction(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, a)
	}
	return out, errors.Join(errs...)
}

func parseAction(s string) (action, error) {
	kind, arg, ok := strings.Cut(s, ":")
	if !ok || arg == "" {
		return action{}, fmt.Errorf("invalid interaction %q: want kind:arg", s)
	}
	a := action{kind: actionKind(kind), raw: s}
	switch a.kind {
	case actionClick, actionSelect:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return action{}, fmt.Errorf("invalid interaction %q: %w", s, err)
		}
		a.index = n
	case actionKey:
		a.key = tabs.ParseKey(strings.ToLower(arg))
	default:
		return action{}, fmt.Errorf("invalid interaction %q: unknown kind %q (click, key, select)", s, kind)
	}
	return a, nil
}

// apply performs a on w. Clicks outside the title range land on the host,
// which is not a title and is therefore ignored by the widget.
func (a action) apply(w *tabs.Widget) {
	switch a.kind {
	case actionClick:
		target := w.Host()
		if titles := w.Titles(); a.index >= 0 && a.index < len(titles) {
			target = titles[a.index]
		}
		w.Click(target)
	case actionKey:
		w.KeyDown(a.key)
	case actionSelect:
		w.SetSelected(a.index)
	}
}

// executeInspect mounts the document without a terminal, applies actions in
// order and prints the resulting state.
func executeInspect(out io.Writer, path string, actions []action) error {
	doc, err := tabfile.Load(path)
	if err != nil {
		return err
	}

	w := tabs.New(doc.Host())
	if err := w.Mount(doc); err != nil {
		return err
	}
	defer w.Unmount()

	var activations []tabs.Activation
	w.OnActivate(func(a tabs.Activation) { activations = append(activations, a) })

	for _, a := range actions {
		a.apply(w)
	}

	_, err = io.WriteString(out, formatInspect(doc, w, activations))
	return err
}

// formatInspect renders the widget's selected value and every attribute.
func formatInspect(doc *dom.Document, w *tabs.Widget, activations []tabs.Activation) string {
	var b strings.Builder

	name := doc.Name
	if name == "" {
		name = "—"
	}
	fmt.Fprintf(&b, "document: %s\n", name)

	if idx, ok := w.Selected(); ok {
		fmt.Fprintf(&b, "selected: %d\n", idx)
	} else {
		b.WriteString("selected: none\n")
	}

	fmt.Fprintf(&b, "host:     %s\n", formatAttrs(doc.Host()))
	for i, n := range dom.TitleNodes(w) {
		fmt.Fprintf(&b, "title %d:  %-24q %s\n", i, n.Label(), formatAttrs(n))
	}
	for i, n := range dom.PanelNodes(w) {
		fmt.Fprintf(&b, "panel %d:  %s\n", i, formatAttrs(n))
	}

	if len(activations) > 0 {
		b.WriteString("activations:\n")
		for _, a := range activations {
			fmt.Fprintf(&b, "  %-12s -> %d\n", a.Source, a.Index)
		}
	}
	return b.String()
}

func formatAttrs(n *dom.Node) string {
	attrs := n.Attributes()
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		if a.Value == "" {
			parts[i] = a.Name
			continue
		}
		parts[i] = a.Name + "=" + a.Value
	}
	return strings.Join(parts, " ")
}

// executeInit writes tabset.toml and the sample document into dir. Files
// that already exist are left alone and reported.
func executeInit(dir string) ([]string, error) {
	var (
		created []string
		errs    []error
	)

	cfgPath, err := config.InitFile(dir)
	if err != nil {
		errs = append(errs, err)
	} else {
		created = append(created, cfgPath)
	}

	docPath := filepath.Join(dir, sampleDocName)
	if _, statErr := os.Stat(docPath); statErr == nil {
		errs = append(errs, fmt.Errorf("%s already exists at %s", sampleDocName, docPath))
	} else if writeErr := os.WriteFile(docPath, []byte(tabfile.SampleTOML), 0644); writeErr != nil {
		errs = append(errs, fmt.Errorf("write %s: %w", docPath, writeErr))
	} else {
		created = append(created, docPath)
	}

	return created, errors.Join(errs...)
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
