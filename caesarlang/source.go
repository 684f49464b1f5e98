package caesarlang

import (
	"fmt"
	"strings"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Pos is a 1-based line and column. Columns count runes, not bytes.
type Pos struct {
	Source *Source
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.Source != nil && p.Source.Name != "" {
		return fmt.Sprintf("%s:%d:%d", p.Source.Name, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before other in the same source.
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}
