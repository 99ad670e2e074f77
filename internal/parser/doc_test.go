package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentationSections(t *testing.T) {
	doc := `# Overview
This project does things.
Second line.

## Usage
Run it.
`
	art := ParseDocumentation(doc)

	assert.Equal(t, []string{"Overview", "Usage"}, art.Headers())

	body, ok := art.Get("Overview")
	require.True(t, ok)
	assert.Equal(t, "This project does things.\nSecond line.\n", body)

	body, ok = art.Get("Usage")
	require.True(t, ok)
	assert.Equal(t, "Run it.\n", body)
}

func TestParseDocumentationNoHeaders(t *testing.T) {
	// Without a header there is nowhere to attach the body, so the whole
	// document is dropped. DropsPreamble pins this.
	art := ParseDocumentation("just some prose\nacross two lines\n")
	assert.Empty(t, art.Sections)
	assert.True(t, DropsPreamble)
}

func TestParseDocumentationPreambleDropped(t *testing.T) {
	doc := "preamble text\nmore preamble\n# First\nbody\n"
	art := ParseDocumentation(doc)

	require.Equal(t, []string{"First"}, art.Headers())
	body, _ := art.Get("First")
	assert.Equal(t, "body\n", body)
	assert.NotContains(t, body, "preamble")
}

func TestParseDocumentationHeaderEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		headers []string
	}{
		{
			name:    "hash without trailing space is not a header",
			input:   "#NoSpace\n# Real\nbody",
			headers: []string{"Real"},
		},
		{
			name:    "deep nesting and trailing markers are stripped",
			input:   "### Deep Section ###\ntext",
			headers: []string{"Deep Section"},
		},
		{
			name:    "empty input",
			input:   "",
			headers: nil,
		},
		{
			name:    "header as last line flushes with empty body",
			input:   "# Alone",
			headers: []string{"Alone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := ParseDocumentation(tt.input)
			if tt.headers == nil {
				assert.Empty(t, art.Sections)
				return
			}
			assert.Equal(t, tt.headers, art.Headers())
		})
	}
}

func TestParseDocumentationDuplicateHeaderKeepsPositionOverwritesBody(t *testing.T) {
	doc := "# A\nfirst\n# B\nmiddle\n# A\nsecond"
	art := ParseDocumentation(doc)

	assert.Equal(t, []string{"A", "B"}, art.Headers())
	body, _ := art.Get("A")
	assert.Equal(t, "second", body)
}
