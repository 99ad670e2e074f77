package crew

import (
	"context"
	"fmt"
)

// Backend generates free-form text for a worker persona and task prompt.
type Backend interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// OrchestrationError wraps a task failure during execution. The run produces
// no report when one occurs; completed results are not returned.
type OrchestrationError struct {
	Task Task
	Err  error
}

func (e *OrchestrationError) Error() string {
	return fmt.Sprintf("task %q (%s): %v", e.Task.Description, e.Task.Role, e.Err)
}

func (e *OrchestrationError) Unwrap() error { return e.Err }

// Crew holds the four workers and the backend that resolves their tasks.
type Crew struct {
	workers map[Role]*Worker
	backend Backend
}

// New creates a crew whose documentation analyst reads staged files from
// stagingDir.
func New(backend Backend, stagingDir string) *Crew {
	return &Crew{
		workers: newWorkers(stagingDir),
		backend: backend,
	}
}

// Worker returns the worker bound to a role.
func (c *Crew) Worker(role Role) *Worker {
	return c.workers[role]
}

// Execute resolves tasks strictly in order, one at a time, each against its
// bound worker. Output order matches task order. Any task failure aborts the
// run with an OrchestrationError and no partial report.
func (c *Crew) Execute(ctx context.Context, tasks []Task) (*Report, error) {
	report := &Report{Results: make([]TaskResult, 0, len(tasks))}

	for _, task := range tasks {
		worker, ok := c.workers[task.Role]
		if !ok {
			return nil, &OrchestrationError{Task: task, Err: fmt.Errorf("no worker for role %v", task.Role)}
		}

		output, err := c.resolve(ctx, worker, task)
		if err != nil {
			return nil, &OrchestrationError{Task: task, Err: err}
		}

		report.Results = append(report.Results, TaskResult{Task: task, Output: output})
	}

	return report, nil
}

// resolve runs one task: builds the prompt (inlining loaded document content
// when the worker carries a loader), calls the backend, and applies the
// formatter capability to the answer when present.
func (c *Crew) resolve(ctx context.Context, worker *Worker, task Task) (string, error) {
	prompt := buildTaskPrompt(worker, task)

	output, err := c.backend.Generate(ctx, worker.systemPrompt(), prompt)
	if err != nil {
		return "", err
	}

	if worker.Formatter != nil {
		output = worker.Formatter.Format(output)
	}

	return output, nil
}
