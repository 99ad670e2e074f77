// internal/output/render.go
package output

import (
	"github.com/charmbracelet/glamour"
)

// RenderANSI renders Markdown for terminal display. Falls back to the raw
// bytes when rendering fails so output is never lost.
func RenderANSI(md []byte) []byte {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}

	rendered, err := r.Render(string(md))
	if err != nil {
		return md
	}
	return []byte(rendered)
}
