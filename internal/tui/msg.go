package tui

import "github.com/LISSConsulting/LISSTech.Tabset/internal/dom"

// docChangedMsg signals that the document or one of its panel files changed.
type docChangedMsg struct{}

// docLoadedMsg carries the result of reloading the document.
type docLoadedMsg struct {
	doc *dom.Document
	err error
}
