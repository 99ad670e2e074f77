package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repocrew/internal/crew"
	"repocrew/internal/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Repo:      "acme/widgets",
		Status:    pipeline.StatusSuccess,
		State:     pipeline.StateCompleted,
		FileCount: 1,
		TaskCount: 3,
		Duration:  1200 * time.Millisecond,
		Report: &crew.Report{Results: []crew.TaskResult{
			{Task: crew.Task{Description: "Analyze README.md.", Role: crew.RoleDocumentationAnalyst, File: "README.md"}, Output: "solid docs"},
			{Task: crew.Task{Description: "Formulate questions and suggestions for README.md.", Role: crew.RoleInquiryAnalyst, File: "README.md"}, Output: "what about tests?"},
			{Task: crew.Task{Description: "Provide Markdown responses for README.md.", Role: crew.RoleResponseFormatter, File: "README.md"}, Output: "**Answer:** add tests"},
		}},
	}
}

func TestFromPipeline(t *testing.T) {
	result := FromPipeline(sampleResult())

	assert.Equal(t, "acme/widgets", result.Repo)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, int64(1200), result.DurationMs)
	require.Len(t, result.Tasks, 3)
	assert.Equal(t, "Documentation Analyst", result.Tasks[0].Role)
	assert.Equal(t, "**Answer:** add tests", result.Tasks[2].Output)
}

func TestFromPipelineFailure(t *testing.T) {
	result := FromPipeline(&pipeline.Result{
		Repo:   "acme/missing",
		Status: pipeline.StatusAborted,
		State:  pipeline.StateAborted,
		Err:    "fetch: list contents: HTTP 404",
	})

	assert.Equal(t, "aborted", result.Status)
	assert.Empty(t, result.Tasks)
	assert.Contains(t, result.Error, "HTTP 404")
}

func TestMarkdownFormat(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(FromPipeline(sampleResult()))
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "# Review: acme/widgets")
	assert.Contains(t, md, "## Analyze README.md.")
	assert.Contains(t, md, "_Documentation Analyst_")
	assert.Contains(t, md, "**Answer:** add tests")
	assert.Contains(t, md, "1 file, 3 tasks")
}

func TestMarkdownFormatError(t *testing.T) {
	result := &RunResult{Repo: "acme/missing", Status: "aborted", Error: "fetch failed"}

	out, err := NewMarkdownFormatter().Format(result)
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "## Error")
	assert.Contains(t, md, "fetch failed")
	assert.NotContains(t, md, "tasks,")
}

func TestJSONFormatRoundTrips(t *testing.T) {
	out, err := NewJSONFormatter().Format(FromPipeline(sampleResult()))
	require.NoError(t, err)

	var decoded RunResult
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "acme/widgets", decoded.Repo)
	require.Len(t, decoded.Tasks, 3)
	assert.Equal(t, "solid docs", decoded.Tasks[0].Output)
}

func TestRenderANSIFallsBackGracefully(t *testing.T) {
	md := []byte("# Title\n\nbody\n")
	out := RenderANSI(md)
	assert.NotEmpty(t, out)
}
