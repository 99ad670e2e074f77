package parser

import (
	"context"
	"fmt"
	"log"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// SymbolKind distinguishes function definitions from class definitions.
type SymbolKind int

const (
	KindFunction SymbolKind = iota
	KindClass
)

// String returns the human-readable kind name.
func (k SymbolKind) String() string {
	switch k {
	case KindFunction:
		return "Function"
	case KindClass:
		return "Class"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

// SymbolInfo describes one function or class definition.
type SymbolInfo struct {
	Kind      SymbolKind
	Docstring *string
}

// CodeArtifact is the parsed representation of a source file: every function
// and class definition keyed by name. Names are unique per file; when two
// definitions share a name, the later one (in depth-first declaration order)
// wins.
type CodeArtifact struct {
	Symbols map[string]SymbolInfo
}

// CodeSyntaxError indicates that source text could not be parsed as valid
// Python. It never escapes ParseCode; it is logged and the file degrades to
// an empty artifact.
type CodeSyntaxError struct {
	File string
}

func (e *CodeSyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %s", e.File)
}

// ParseCode extracts function and class definitions from Python source.
// Unparseable source is reported as a diagnostic and yields an empty
// artifact; it never returns an error to the caller.
func ParseCode(name string, source []byte) CodeArtifact {
	art, err := parsePython(name, source)
	if err != nil {
		log.Printf("WARNING: %v", err)
		return CodeArtifact{Symbols: map[string]SymbolInfo{}}
	}
	return art
}

func parsePython(name string, source []byte) (CodeArtifact, error) {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())

	tree, err := p.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return CodeArtifact{}, fmt.Errorf("parse %s: %w", name, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return CodeArtifact{}, &CodeSyntaxError{File: name}
	}

	art := CodeArtifact{Symbols: make(map[string]SymbolInfo)}

	walk(root, func(node *sitter.Node) {
		var kind SymbolKind
		switch node.Type() {
		case "function_definition":
			kind = KindFunction
		case "class_definition":
			kind = KindClass
		default:
			return
		}

		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			return
		}

		art.Symbols[nameNode.Content(source)] = SymbolInfo{
			Kind:      kind,
			Docstring: extractDocstring(node, source),
		}
	})

	return art, nil
}

// walk performs a depth-first traversal of the syntax tree, calling fn for
// each node before its descendants.
func walk(node *sitter.Node, fn func(*sitter.Node)) {
	if node == nil {
		return
	}
	fn(node)
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil {
			walk(child, fn)
		}
	}
}

// extractDocstring returns the leading documentation string of a function or
// class definition: the string literal that is the body's first statement.
// Returns nil when there is none.
func extractDocstring(node *sitter.Node, source []byte) *string {
	body := node.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return nil
	}

	first := body.NamedChild(0)
	if first == nil || first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return nil
	}

	str := first.NamedChild(0)
	if str == nil || str.Type() != "string" {
		return nil
	}

	doc := unquote(str.Content(source))
	return &doc
}

// unquote strips Python string literal syntax: an optional prefix
// (r, b, u, f in any case) and the surrounding single, double, or triple
// quotes. Interior whitespace is trimmed the way docstrings are
// conventionally displayed.
func unquote(lit string) string {
	lit = strings.TrimLeft(lit, "rRbBuUfF")

	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(lit, q) && strings.HasSuffix(lit, q) && len(lit) >= 2*len(q) {
			lit = lit[len(q) : len(lit)-len(q)]
			break
		}
	}

	return strings.TrimSpace(lit)
}
