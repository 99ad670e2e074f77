// internal/output/formatter.go
package output

import (
	"repocrew/internal/pipeline"
)

// RunResult holds the collected output of one pipeline run in a
// serialization-friendly shape.
type RunResult struct {
	Repo       string       `json:"repo"`
	Status     string       `json:"status"`
	FileCount  int          `json:"file_count"`
	TaskCount  int          `json:"task_count"`
	DurationMs int64        `json:"duration_ms"`
	Error      string       `json:"error,omitempty"`
	Tasks      []TaskOutput `json:"tasks,omitempty"`
}

// TaskOutput records one resolved task in task order.
type TaskOutput struct {
	Description string `json:"description"`
	Role        string `json:"role"`
	Output      string `json:"output"`
}

// FromPipeline converts a pipeline result for formatting.
func FromPipeline(res *pipeline.Result) *RunResult {
	out := &RunResult{
		Repo:       res.Repo,
		Status:     string(res.Status),
		FileCount:  res.FileCount,
		TaskCount:  res.TaskCount,
		DurationMs: res.Duration.Milliseconds(),
		Error:      res.Err,
	}

	if res.Report != nil {
		out.Tasks = make([]TaskOutput, 0, len(res.Report.Results))
		for _, tr := range res.Report.Results {
			out.Tasks = append(out.Tasks, TaskOutput{
				Description: tr.Task.Description,
				Role:        tr.Task.Role.String(),
				Output:      tr.Output,
			})
		}
	}

	return out
}

// Formatter formats a RunResult into output bytes.
type Formatter interface {
	Format(result *RunResult) ([]byte, error)
}
