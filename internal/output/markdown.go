// internal/output/markdown.go
package output

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter outputs a RunResult as a human-readable Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the RunResult as Markdown.
func (f *MarkdownFormatter) Format(result *RunResult) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Review: %s\n\n", result.Repo)

	if result.Error != "" {
		b.WriteString("## Error\n\n")
		b.WriteString(result.Error)
		b.WriteString("\n")
		return []byte(b.String()), nil
	}

	for _, task := range result.Tasks {
		fmt.Fprintf(&b, "## %s\n\n_%s_\n\n%s\n\n", task.Description, task.Role, task.Output)
	}

	fileLabel := "files"
	if result.FileCount == 1 {
		fileLabel = "file"
	}
	duration := time.Duration(result.DurationMs) * time.Millisecond
	fmt.Fprintf(&b, "---\n*%d %s, %d tasks, %s*\n",
		result.FileCount, fileLabel, result.TaskCount, duration.Round(100*time.Millisecond))

	return []byte(b.String()), nil
}
