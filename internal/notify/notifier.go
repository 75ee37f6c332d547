// Package notify sends fire-and-forget HTTP notifications when a tab is
// activated. The primary use case is ntfy.sh, but any HTTP webhook works.
package notify

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/LISSConsulting/LISSTech.Tabset/internal/tabs"
)

// Notifier posts plain-text HTTP notifications for activations.
type Notifier struct {
	url        string
	title      string
	onActivate bool
	client     *http.Client
}

// New creates a Notifier. docName is used as the X-Title header; if empty,
// "tabset" is used instead.
func New(notifURL, docName string, onActivate bool) *Notifier {
	title := "tabset"
	if docName != "" {
		title = docName
	}
	return &Notifier{
		url:        notifURL,
		title:      title,
		onActivate: onActivate,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Hook is a tabs.Widget.OnActivate-compatible function. It fires an
// asynchronous POST per activation when activation notifications are on.
func (n *Notifier) Hook(a tabs.Activation) {
	if !n.onActivate || n.url == "" {
		return
	}
	go n.post(Message(a), a.Source.String())
}

// Message renders the notification body for an activation.
func Message(a tabs.Activation) string {
	if l, ok := a.Element.(interface{ Label() string }); ok && l.Label() != "" {
		return fmt.Sprintf("Activated tab %d: %s", a.Index+1, l.Label())
	}
	return fmt.Sprintf("Activated tab %d", a.Index+1)
}

// post sends a plain-text POST to the configured URL. Errors are silently
// discarded so notification failures never interrupt the UI.
func (n *Notifier) post(message, tag string) {
	req, err := http.NewRequest(http.MethodPost, n.url, strings.NewReader(message))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-Title", n.title)
	req.Header.Set("X-Tags", tag)
	resp, err := n.client.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}
