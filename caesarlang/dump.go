package caesarlang

import (
	"io"

	"gopkg.in/yaml.v2"
)

type dumpResult struct {
	Accepted   bool            `yaml:"accepted"`
	Statements []dumpStatement `yaml:"statements,omitempty"`
	Errors     []string        `yaml:"errors,omitempty"`
}

type dumpStatement struct {
	Kind     string  `yaml:"kind"`
	Line     int     `yaml:"line"`
	Column   int     `yaml:"column"`
	Amount   *int    `yaml:"amount,omitempty"`
	Text     *string `yaml:"text,omitempty"`
	Shift    *int    `yaml:"shift,omitempty"`
	Explicit bool    `yaml:"explicit,omitempty"`
}

// DumpYAML writes the parse result as a YAML document.
func DumpYAML(w io.Writer, r *ParseResult) error {
	doc := dumpResult{
		Accepted: r.OK(),
	}
	if r.Program != nil {
		for _, stmt := range r.Program.Statements {
			doc.Statements = append(doc.Statements, toDumpStatement(stmt))
		}
	}
	for _, err := range r.Errors {
		doc.Errors = append(doc.Errors, err.Error())
	}
	bs, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

func toDumpStatement(stmt Statement) dumpStatement {
	pos := stmt.StatementPos()
	ret := dumpStatement{
		Line:   pos.Line,
		Column: pos.Column,
	}
	switch stmt := stmt.(type) {
	case *ShiftDecl:
		ret.Kind = "shift"
		ret.Amount = &stmt.Amount
	case *EncodeStmt:
		ret.Kind = "encode"
		ret.Text = &stmt.Text
		ret.Shift = &stmt.Shift
		ret.Explicit = stmt.Explicit
	case *DecodeStmt:
		ret.Kind = "decode"
		ret.Text = &stmt.Text
		ret.Shift = &stmt.Shift
		ret.Explicit = stmt.Explicit
	}
	return ret
}
