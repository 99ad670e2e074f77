// Package pipeline runs the full review flow as fixed sequential stages:
// fetch -> classify -> compile -> execute. Control flows strictly forward;
// no stage reads back from a later one.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"repocrew/internal/crew"
	"repocrew/internal/fetch"
	"repocrew/internal/parser"
)

// State is the orchestrator's position in the run lifecycle.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateClassifying
	StateCompiling
	StateExecuting
	StateCompleted
	StateAborted
)

// String returns the state's lowercase name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateClassifying:
		return "classifying"
	case StateCompiling:
		return "compiling"
	case StateExecuting:
		return "executing"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status is the run's terminal outcome, deliberately textual so callers can
// test it without inspecting error values.
type Status string

const (
	// StatusSuccess: every task resolved; the report is populated.
	StatusSuccess Status = "success"
	// StatusAborted: the run failed before any task executed (fetch,
	// classification, or compilation). No report.
	StatusAborted Status = "aborted"
	// StatusNoResult: a task failed during execution. Completed task
	// results are discarded; no partial report is returned.
	StatusNoResult Status = "no-result"
)

// Fetcher is the narrow repository-fetch interface the pipeline consumes.
type Fetcher interface {
	Fetch(ctx context.Context, owner, repo string) ([]fetch.RawFile, error)
}

// Config holds one run's inputs.
type Config struct {
	Repo       string // "owner/repo" or a full repository URL
	StagingDir string
}

// Result is the outcome of one pipeline run. Report is nil unless Status is
// StatusSuccess.
type Result struct {
	Repo      string
	Status    Status
	State     State
	Report    *crew.Report
	Err       string
	FileCount int
	TaskCount int
	Duration  time.Duration
}

// Run executes the full pipeline for one repository. Each stage completes
// fully before the next begins; tasks execute one at a time in compiled
// order. All failures land in the Result rather than an error return, so the
// terminal outcome is always one of the three statuses.
func Run(ctx context.Context, cfg Config, fetcher Fetcher, backend crew.Backend) *Result {
	start := time.Now()
	res := &Result{Repo: cfg.Repo, State: StateIdle}

	abort := func(err error) *Result {
		res.State = StateAborted
		res.Status = StatusAborted
		res.Err = err.Error()
		res.Duration = time.Since(start)
		return res
	}

	owner, repo, err := fetch.ParseRepo(cfg.Repo)
	if err != nil {
		return abort(err)
	}

	res.State = StateFetching
	fmt.Fprintf(os.Stderr, "repocrew: fetching %s/%s...\n", owner, repo)
	raw, err := fetcher.Fetch(ctx, owner, repo)
	if err != nil {
		return abort(fmt.Errorf("fetch: %w", err))
	}

	res.State = StateClassifying
	fmt.Fprintf(os.Stderr, "repocrew: classifying %d files...\n", len(raw))
	var classified []parser.ClassifiedFile
	for _, file := range raw {
		cf, ok := parser.Classify(file.Name, file.Content)
		if !ok {
			continue
		}
		classified = append(classified, cf)
	}
	res.FileCount = len(classified)

	res.State = StateCompiling
	tasks, err := crew.CompileTasks(classified)
	if err != nil {
		return abort(fmt.Errorf("compile: %w", err))
	}
	res.TaskCount = len(tasks)

	res.State = StateExecuting
	fmt.Fprintf(os.Stderr, "repocrew: executing %d tasks...\n", len(tasks))
	c := crew.New(backend, cfg.StagingDir)
	report, err := c.Execute(ctx, tasks)
	if err != nil {
		res.State = StateAborted
		res.Status = StatusNoResult
		res.Err = err.Error()
		res.Duration = time.Since(start)
		return res
	}

	res.State = StateCompleted
	res.Status = StatusSuccess
	res.Report = report
	res.Duration = time.Since(start)
	return res
}
