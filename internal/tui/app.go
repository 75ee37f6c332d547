package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/dom"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/logging"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabs"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.Tabset/internal/tui/panels"
)

// Options configures the root model.
type Options struct {
	// Doc is mounted immediately. A nil Doc cannot compose and New fails
	// with tabs.ErrUnsupported.
	Doc *dom.Document

	// Path and Load reload the document when Changes fires. Reloading is
	// disabled when any of them is unset.
	Path    string
	Load    func(path string) (*dom.Document, error)
	Changes <-chan struct{}

	AccentColor   string
	MarkdownStyle string // glamour style name or path; "dark" when empty
	Framed        bool   // force the framed look regardless of the document

	Logger *slog.Logger

	// OnActivate hooks are registered on every mounted widget.
	OnActivate []func(tabs.Activation)
}

// Model is the root bubbletea model: header, title strip, active panel and
// footer around one mounted tab widget.
type Model struct {
	widget      *tabs.Widget
	doc         *dom.Document
	removeHooks []func()

	// Reload
	path    string
	load    func(path string) (*dom.Document, error)
	changes <-chan struct{}

	// Presentation
	panel  components.PanelView
	md     *markdownRenderer
	keys   KeyMap
	theme  Theme
	layout Layout
	focus  FocusTarget
	framed bool
	width  int
	height int
	status string

	onActivate []func(tabs.Activation)
	logger     *slog.Logger
}

// New mounts opts.Doc and returns the root model. The caller owns the
// widget's lifetime and must call Close when the program exits.
func New(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		path:       opts.Path,
		load:       opts.Load,
		changes:    opts.Changes,
		md:         newMarkdownRenderer(opts.MarkdownStyle),
		keys:       DefaultKeyMap(),
		theme:      NewTheme(opts.AccentColor),
		focus:      FocusTitles,
		framed:     opts.Framed,
		width:      80,
		height:     24,
		onActivate: opts.OnActivate,
		logger:     logger,
	}
	if m.path == "" || m.load == nil {
		m.changes = nil
	}
	if err := m.mount(opts.Doc); err != nil {
		return Model{}, err
	}

	m.layout = Calculate(m.width, m.height, m.widget.Framed())
	m.panel = components.NewPanelView(m.layout.Panel.Width, m.layout.Panel.Height)
	return m.syncPanel(), nil
}

// Widget returns the mounted widget.
func (m Model) Widget() *tabs.Widget { return m.widget }

// Document returns the document the widget is composed from.
func (m Model) Document() *dom.Document { return m.doc }

// Focus returns the part of the widget holding keyboard focus.
func (m Model) Focus() FocusTarget { return m.focus }

// Status returns the footer status message.
func (m Model) Status() string { return m.status }

// Close unmounts the widget. It is safe to call more than once.
func (m Model) Close() {
	if m.widget == nil || m.widget.State() != tabs.StateActive {
		return
	}
	m.widget.Unmount()
	m.logger.Info("widget unmounted", "document", m.doc.Name)
}

// mount composes a fresh widget from doc and swaps it in. The previous
// widget stays mounted when composition fails.
func (m *Model) mount(doc *dom.Document) error {
	var host tabs.Element
	if doc != nil {
		host = doc.Host()
	}
	w := tabs.New(host)
	if err := w.Mount(doc); err != nil {
		return err
	}
	if m.framed {
		w.SetFramed(true)
	}

	for _, remove := range m.removeHooks {
		remove()
	}
	if m.widget != nil {
		m.widget.Unmount()
	}

	logger := m.logger
	m.removeHooks = []func(){
		w.OnActivate(func(a tabs.Activation) {
			logger.Info("tab activated", "index", a.Index, "source", a.Source)
		}),
	}
	for _, fn := range m.onActivate {
		m.removeHooks = append(m.removeHooks, w.OnActivate(fn))
	}
	m.widget, m.doc = w, doc

	sel, _ := w.Selected()
	logger.Info("widget mounted",
		"document", doc.Name,
		"titles", len(w.Titles()),
		"panels", len(w.Panels()),
		"selected", sel)
	return nil
}

// Init starts listening for document changes when reloading is enabled.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// waitForChange blocks on the change channel and returns the next message.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return docChangedMsg{}
	}
}

// reloadCmd loads the document off the update loop.
func (m Model) reloadCmd() tea.Cmd {
	load, path := m.load, m.path
	return func() tea.Msg {
		doc, err := load(path)
		return docLoadedMsg{doc: doc, err: err}
	}
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case docChangedMsg:
		if m.changes == nil {
			return m, nil
		}
		return m, tea.Batch(m.reloadCmd(), waitForChange(m.changes))
	case docLoadedMsg:
		return m.handleDocLoaded(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m.relayout(), nil
}

// relayout recomputes geometry for the current size and framing.
func (m Model) relayout() Model {
	m.layout = Calculate(m.width, m.height, m.widget.Framed())
	if m.layout.TooSmall {
		return m
	}
	m.panel = m.panel.SetSize(m.layout.Panel.Width, m.layout.Panel.Height)
	return m.syncPanel()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.focus = m.focus.Next()
		if m.focus == FocusTitles {
			m.focusSelectedTitle()
		}
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.widget.SetSelected(int(msg.String()[0] - '1'))
		return m.syncPanel(), nil
	}

	if m.focus == FocusTitles {
		if k := m.keys.RouterKey(msg); k != tabs.KeyOther {
			m.widget.KeyDown(k)
			return m.syncPanel(), nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		for i := range m.widget.Titles() {
			if z := zone.Get(components.ZoneID(i)); z != nil && z.InBounds(msg) {
				return m.clickTitle(i), nil
			}
		}
		return m, nil
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}
	return m, nil
}

// clickTitle dispatches a pointer click on the title at index.
func (m Model) clickTitle(index int) Model {
	titles := m.widget.Titles()
	if index < 0 || index >= len(titles) {
		return m
	}
	m.widget.Click(titles[index])
	m.focus = FocusTitles
	return m.syncPanel()
}

// focusSelectedTitle moves input focus to the selected title, if any.
func (m Model) focusSelectedTitle() {
	idx, ok := m.widget.Selected()
	titles := m.widget.Titles()
	if ok && idx >= 0 && idx < len(titles) {
		titles[idx].Focus()
	}
}

func (m Model) handleDocLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = "reload failed: " + msg.err.Error()
		m.logger.Warn("document reload failed", "path", m.path, "error", msg.err)
		return m, nil
	}
	if err := m.mount(msg.doc); err != nil {
		m.status = "remount failed: " + err.Error()
		m.logger.Warn("document remount failed", "path", m.path, "error", err)
		return m, nil
	}
	m.status = "reloaded"
	m.logger.Info("document reloaded", "path", m.path)
	return m.relayout(), nil
}

// syncPanel renders the visible panels into the panel view. Visibility is
// read back from aria-hidden, never from the selected index.
func (m Model) syncPanel() Model {
	var bodies []string
	for _, n := range dom.PanelNodes(m.widget) {
		if v, _ := n.Attribute(tabs.AttrAriaHidden); v == "false" {
			bodies = append(bodies, m.renderBody(n))
		}
	}
	content := emptyPanelStyle.Render("no tab selected")
	if len(bodies) > 0 {
		content = strings.Join(bodies, "\n\n")
	}
	m.panel = m.panel.SetContent(content)
	return m
}

func (m Model) renderBody(n *dom.Node) string {
	width := m.layout.Panel.Width
	if width < 1 {
		width = 1
	}
	if n.Format() == dom.FormatMarkdown {
		out, err := m.md.Render(n.Body(), width)
		if err == nil {
			return out
		}
		m.logger.Warn("markdown render failed", "error", err)
	}
	return plainBodyStyle.Width(width).Render(n.Body())
}

// tabBar builds the title strip from the titles' ARIA attributes.
func (m Model) tabBar() components.TabBar {
	var focused *dom.Node
	if m.doc != nil {
		focused = m.doc.Focused()
	}
	nodes := dom.TitleNodes(m.widget)
	items := make([]components.Tab, len(nodes))
	for i, n := range nodes {
		sel, _ := n.Attribute(tabs.AttrAriaSelected)
		items[i] = components.Tab{
			Label:    n.Label(),
			Selected: sel == "true",
			Focused:  m.focus == FocusTitles && n == focused,
		}
	}
	active, inactive := m.theme.TitleStyles()
	return components.NewTabBar(items).
		WithStyles(active, inactive).
		SetWidth(m.layout.Titles.Width)
}

// View renders the header, the widget and the footer.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	sel, ok := m.widget.Selected()
	if !ok {
		sel = -1
	}
	header := panels.RenderHeader(panels.HeaderProps{
		Name:     m.doc.Name,
		Path:     m.path,
		Selected: sel,
		Count:    len(m.widget.Titles()),
		Focus:    m.focus.String(),
		Watching: m.changes != nil,
	}, m.layout.Header.Width, m.theme.AccentHeaderStyle())

	footer := panels.RenderFooter(panels.FooterProps{
		Bindings: m.keys.HelpFor(m.focus),
		Status:   m.status,
	}, m.layout.Footer.Width)

	strip := lipgloss.NewStyle().
		Width(m.layout.Titles.Width).
		Render(m.tabBar().View())
	body := lipgloss.NewStyle().
		Width(m.layout.Panel.Width).
		Height(m.layout.Panel.Height).
		Render(m.panel.View())

	widget := lipgloss.JoinVertical(lipgloss.Left, strip, body)
	if m.widget.Framed() {
		widget = m.theme.FrameStyle().Render(widget)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, widget, footer))
}
