package crew

import (
	"fmt"
	"os"
	"path/filepath"
)

// DocumentLoader loads staged document content for a worker. Failures come
// back as an error string in the result text, never as an error value, so a
// missing file degrades the one task instead of crashing the run.
type DocumentLoader struct {
	dir string
}

// NewDocumentLoader creates a loader rooted at the staging directory.
func NewDocumentLoader(dir string) *DocumentLoader {
	return &DocumentLoader{dir: dir}
}

// Name returns the capability name advertised to the worker persona.
func (l *DocumentLoader) Name() string { return "markdown_loader" }

// Load reads the staged file by basename. Path components are stripped; the
// staging layout is flat.
func (l *DocumentLoader) Load(path string) string {
	data, err := os.ReadFile(filepath.Join(l.dir, filepath.Base(path)))
	if err != nil {
		return fmt.Sprintf("Error loading file: %v", err)
	}
	return string(data)
}

// MarkdownFormatter reformats an answer into the fixed Markdown template.
// Pure and total; there is no failure mode.
type MarkdownFormatter struct{}

// Name returns the capability name advertised to the worker persona.
func (MarkdownFormatter) Name() string { return "markdown_formatter" }

// Format wraps a response string in the answer template.
func (MarkdownFormatter) Format(response string) string {
	return "**Answer:** " + response
}
