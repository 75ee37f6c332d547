package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle removes glamour's document margins so bodies line up with
// the title strip.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// markdownRenderer renders markdown panel bodies through glamour. The
// underlying renderer is rebuilt only when the wrap width changes.
type markdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &markdownRenderer{style: style}
}

// Render transforms src to styled terminal output wrapped at width.
func (r *markdownRenderer) Render(src string, width int) (string, error) {
	if r.renderer == nil || r.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStylePath(r.style),
			glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		r.renderer, r.width = tr, width
	}
	out, err := r.renderer.Render(src)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
