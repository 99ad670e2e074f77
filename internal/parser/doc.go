// Package parser converts raw repository files into normalized artifacts:
// ordered header/body sections for Markdown documentation, and a symbol table
// of function and class definitions for Python source.
package parser

import (
	"regexp"
	"strings"
)

// DropsPreamble records that text before the first ATX header is discarded
// by ParseDocumentation. A document with no headers at all therefore parses
// to an empty artifact. Tests pin this behavior.
const DropsPreamble = true

// headerPattern matches ATX-style headings: one or more '#' followed by
// whitespace.
var headerPattern = regexp.MustCompile(`^#+\s`)

// Section is one header with the verbatim body text that follows it, up to
// the next header.
type Section struct {
	Header string
	Body   string
}

// DocArtifact is the parsed representation of a documentation file: sections
// in order of first occurrence. A repeated header keeps its original position
// but its body is replaced by the later occurrence.
type DocArtifact struct {
	Sections []Section
}

// Get returns the body for the given header and whether it exists.
func (a DocArtifact) Get(header string) (string, bool) {
	for _, s := range a.Sections {
		if s.Header == header {
			return s.Body, true
		}
	}
	return "", false
}

// Headers returns the section headers in order.
func (a DocArtifact) Headers() []string {
	headers := make([]string, len(a.Sections))
	for i, s := range a.Sections {
		headers[i] = s.Header
	}
	return headers
}

// ParseDocumentation segments Markdown-like text into header/body sections.
// Lines are scanned in order; each ATX header opens a new section and closes
// the previous one. Body lines accumulate verbatim and are joined with
// newlines. Lines before the first header are dropped (see DropsPreamble).
// It always succeeds; text without headers yields an empty artifact.
func ParseDocumentation(text string) DocArtifact {
	var art DocArtifact
	index := make(map[string]int)

	var current string
	var body []string
	open := false

	flush := func() {
		if !open {
			return
		}
		joined := strings.Join(body, "\n")
		if i, seen := index[current]; seen {
			art.Sections[i].Body = joined
			return
		}
		index[current] = len(art.Sections)
		art.Sections = append(art.Sections, Section{Header: current, Body: joined})
	}

	for _, line := range strings.Split(text, "\n") {
		if headerPattern.MatchString(line) {
			flush()
			current = strings.TrimSpace(strings.Trim(line, "# "))
			body = nil
			open = true
			continue
		}
		body = append(body, line)
	}
	flush()

	return art
}
