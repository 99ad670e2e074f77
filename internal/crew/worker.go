package crew

import (
	"fmt"
	"strings"
)

// Worker is a long-lived role specialization: a fixed persona plus an
// optional, statically-typed capability set. Only the documentation analyst
// carries a loader and only the response formatter carries a formatter; the
// other roles generate free-form text with no extra capability.
type Worker struct {
	Role      Role
	Goal      string
	Backstory string

	Loader    *DocumentLoader
	Formatter *MarkdownFormatter
}

// Capabilities lists the worker's capability names for its persona prompt.
func (w *Worker) Capabilities() []string {
	var names []string
	if w.Loader != nil {
		names = append(names, w.Loader.Name())
	}
	if w.Formatter != nil {
		names = append(names, w.Formatter.Name())
	}
	return names
}

// systemPrompt renders the worker's persona for the generative backend.
func (w *Worker) systemPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s. %s %s", w.Role, w.Goal, w.Backstory)
	if caps := w.Capabilities(); len(caps) > 0 {
		fmt.Fprintf(&b, " Available capabilities: %s.", strings.Join(caps, ", "))
	}
	return b.String()
}

// newWorkers builds the four fixed workers. The staging directory backs the
// documentation analyst's loader.
func newWorkers(stagingDir string) map[Role]*Worker {
	return map[Role]*Worker{
		RoleDocumentationAnalyst: {
			Role:      RoleDocumentationAnalyst,
			Goal:      "Analyze project documentation for quality and completeness.",
			Backstory: "Experienced in analyzing technical project documentation.",
			Loader:    NewDocumentLoader(stagingDir),
		},
		RoleCodeReviewer: {
			Role:      RoleCodeReviewer,
			Goal:      "Review Python code for style, efficiency, and best practices.",
			Backstory: "Skilled in Python code review, focusing on style and best practices.",
		},
		RoleInquiryAnalyst: {
			Role:      RoleInquiryAnalyst,
			Goal:      "Generate questions and suggestions based on processed information.",
			Backstory: "Skilled in synthesizing information and identifying key improvement areas.",
		},
		RoleResponseFormatter: {
			Role:      RoleResponseFormatter,
			Goal:      "Provide Markdown-formatted answers to questions.",
			Backstory: "Expert in technical writing and content curation for Markdown formatting.",
			Formatter: &MarkdownFormatter{},
		},
	}
}
