// Package host connects the conversion pipeline to a design-tool host.
//
// The host reports selection changes as [Event]s. A [Session] converts each
// selection and posts the outcome to the host's UI through a [Poster].
// Selection events may arrive faster than builds complete: a newer event
// cancels the build still running for an older one, and a result whose
// event has been superseded is never posted, so the UI always ends up
// showing the newest selection.
package host

import (
	"context"

	"github.com/matzehuels/framecode/pkg/scene"
)

// Event is one selection change.
type Event struct {
	// Selection lists the selected nodes in host order.
	Selection []*scene.Node
	// ParentID is the parent of the first selected node, computed by the
	// caller (see [ParentOf]).
	ParentID string
}

// IDs returns the ids of the selected nodes.
func (e Event) IDs() []string {
	ids := make([]string, 0, len(e.Selection))
	for _, n := range e.Selection {
		if n != nil {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Message types.
const (
	MessageArtifacts = "artifacts"
	MessageSelection = "selection"
	MessageError     = "error"
)

// Message is posted to the host UI.
type Message struct {
	Type       string   `json:"type"`
	BuildID    string   `json:"build_id,omitempty"`
	ParentID   string   `json:"parent_id,omitempty"`
	Selection  []string `json:"selection,omitempty"`
	Markup     string   `json:"markup,omitempty"`
	Stylesheet string   `json:"stylesheet,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Size returns the payload size in bytes.
func (m Message) Size() int {
	return len(m.Markup) + len(m.Stylesheet) + len(m.Error)
}

// Poster delivers messages to the host UI.
type Poster interface {
	Post(ctx context.Context, msg Message) error
}

// PosterFunc adapts a function to the Poster interface.
type PosterFunc func(ctx context.Context, msg Message) error

// Post calls f.
func (f PosterFunc) Post(ctx context.Context, msg Message) error { return f(ctx, msg) }

// ParentOf returns the id of the parent of the first selected node.
// fallback is returned when the first selected node is top-level, and ""
// when the selection is empty or unknown.
func ParentOf(roots []*scene.Node, selection []string, fallback string) string {
	if len(selection) == 0 {
		return ""
	}
	n, parent := scene.Find(roots, selection[0])
	switch {
	case n == nil:
		return ""
	case parent == nil:
		return fallback
	default:
		return parent.ID
	}
}
