// Package crew holds the four role-specialized review workers, the task
// compiler that derives an ordered task sequence from parsed artifacts, and
// the sequential orchestrator that resolves each task against the generative
// backend.
package crew

import (
	"fmt"
	"strings"
)

// Role identifies one of the fixed worker specializations.
type Role int

const (
	RoleDocumentationAnalyst Role = iota
	RoleCodeReviewer
	RoleInquiryAnalyst
	RoleResponseFormatter
)

// String returns the role's display name.
func (r Role) String() string {
	switch r {
	case RoleDocumentationAnalyst:
		return "Documentation Analyst"
	case RoleCodeReviewer:
		return "Code Reviewer"
	case RoleInquiryAnalyst:
		return "Inquiry and Suggestion Analyst"
	case RoleResponseFormatter:
		return "Markdown Response Specialist"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Task is one immutable unit of review work: a natural-language description
// bound to the role that resolves it. File names the repository file the
// task concerns.
type Task struct {
	Description string
	Role        Role
	File        string
}

// TaskResult pairs a task with the text its worker produced.
type TaskResult struct {
	Task   Task
	Output string
}

// Report is the ordered concatenation of all task results for one run.
type Report struct {
	Results []TaskResult
}

// Text renders the report as one Markdown document, results in task order.
func (r *Report) Text() string {
	var b strings.Builder
	for i, res := range r.Results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n_%s_\n\n%s", res.Task.Description, res.Task.Role, res.Output)
	}
	return b.String()
}
