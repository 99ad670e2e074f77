package crew

import (
	"bytes"
	"text/template"
)

var taskTmpl = template.Must(template.New("task").Parse(`{{.Description}}
{{- if .Content}}

The file content is provided below:

{{.Content}}
{{- end}}`))

// buildTaskPrompt renders the prompt handed to the backend for one task.
// Workers with a document loader get the staged file content inlined; loader
// failures surface inside the prompt as an error string rather than aborting.
func buildTaskPrompt(worker *Worker, task Task) string {
	data := struct {
		Description string
		Content     string
	}{
		Description: task.Description,
	}

	if worker.Loader != nil && task.File != "" {
		data.Content = worker.Loader.Load(task.File)
	}

	var b bytes.Buffer
	if err := taskTmpl.Execute(&b, data); err != nil {
		// The template is static; execution cannot fail on string fields.
		return task.Description
	}
	return b.String()
}
