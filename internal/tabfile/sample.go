package tabfile

import "github.com/LISSConsulting/LISSTech.Tabset/internal/dom"

// SampleTOML is the starter document written by `tabset init`.
const SampleTOML = `# tabs.toml - tabset document
# Each [[tab]] is a title paired with its panel. Mark one tab with
# selected = true to show it first; if several are marked, the last wins.

title = "Tabs"
framed = true  # draw the widget inside a frame

[[tab]]
title = "Tab 1"
body = "content panel 1"

[[tab]]
title = "Tab 2"
selected = true
format = "markdown"
body = """
## content panel 2

Use **←/→** or **↑/↓** to move between tabs, or click a title.
"""

[[tab]]
title = "Tab 3"
body = "content panel 3"
`

// Sample parses SampleTOML.
func Sample() (*dom.Document, error) {
	return Parse([]byte(SampleTOML), SyntaxTOML, "")
}
