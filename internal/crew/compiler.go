package crew

import (
	"fmt"

	"repocrew/internal/parser"
)

// CompileTasks deterministically turns classified files into the ordered task
// sequence the crew executes. Each file yields exactly three contiguous
// tasks; blocks follow the input file order. The match over FileType is
// exhaustive: an unclassified kind is a compile error rather than a silent
// skip, so new file kinds surface immediately.
func CompileTasks(files []parser.ClassifiedFile) ([]Task, error) {
	tasks := make([]Task, 0, len(files)*3)

	for _, f := range files {
		switch f.Type {
		case parser.TypeDocumentation:
			tasks = append(tasks, Task{
				Description: fmt.Sprintf("Analyze %s.", f.Name),
				Role:        RoleDocumentationAnalyst,
				File:        f.Name,
			})
		case parser.TypeCode:
			tasks = append(tasks, Task{
				Description: fmt.Sprintf("Review code in %s.", f.Name),
				Role:        RoleCodeReviewer,
				File:        f.Name,
			})
		default:
			return nil, fmt.Errorf("compile tasks: unclassified file kind %v for %s", f.Type, f.Name)
		}

		tasks = append(tasks,
			Task{
				Description: fmt.Sprintf("Formulate questions and suggestions for %s.", f.Name),
				Role:        RoleInquiryAnalyst,
				File:        f.Name,
			},
			Task{
				Description: fmt.Sprintf("Provide Markdown responses for %s.", f.Name),
				Role:        RoleResponseFormatter,
				File:        f.Name,
			},
		)
	}

	return tasks, nil
}
