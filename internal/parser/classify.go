package parser

import (
	"fmt"
	"path/filepath"
)

// FileType is the explicit classification tag for a fetched file.
type FileType int

const (
	TypeDocumentation FileType = iota
	TypeCode
)

// String returns the human-readable type name.
func (t FileType) String() string {
	switch t {
	case TypeDocumentation:
		return "documentation"
	case TypeCode:
		return "code"
	default:
		return fmt.Sprintf("FileType(%d)", int(t))
	}
}

// ClassifiedFile pairs a file name with its classification and parsed
// artifact. Exactly one of Doc or Code is populated, per Type.
type ClassifiedFile struct {
	Name string
	Type FileType
	Doc  DocArtifact
	Code CodeArtifact
}

// Classify dispatches a file on its name suffix: ".md" parses as
// documentation, ".py" parses as code. Any other suffix is excluded from the
// pipeline; ok is false and the file is skipped.
func Classify(name, content string) (ClassifiedFile, bool) {
	switch filepath.Ext(name) {
	case ".md":
		return ClassifiedFile{
			Name: name,
			Type: TypeDocumentation,
			Doc:  ParseDocumentation(content),
		}, true
	case ".py":
		return ClassifiedFile{
			Name: name,
			Type: TypeCode,
			Code: ParseCode(name, []byte(content)),
		}, true
	default:
		return ClassifiedFile{}, false
	}
}
