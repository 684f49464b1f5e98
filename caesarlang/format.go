package caesarlang

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format writes p as source text, one statement per line.
// Inherited shifts are left implicit, so the output parses back to an equal program.
func Format(w io.Writer, p *Program) error {
	for _, stmt := range p.Statements {
		var err error
		switch stmt := stmt.(type) {
		case *ShiftDecl:
			_, err = fmt.Fprintf(w, "shift %d;\n", stmt.Amount)
		case *EncodeStmt:
			_, err = fmt.Fprintf(w, "encode %s%s;\n", quote(stmt.Text), explicitShift(stmt.Shift, stmt.Explicit))
		case *DecodeStmt:
			_, err = fmt.Fprintf(w, "decode %s%s;\n", quote(stmt.Text), explicitShift(stmt.Shift, stmt.Explicit))
		default:
			err = fmt.Errorf("unknown statement %T", stmt)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Program) String() string {
	var sb strings.Builder
	if err := Format(&sb, p); err != nil {
		panic(err)
	}
	return sb.String()
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

func explicitShift(shift int, explicit bool) string {
	if !explicit {
		return ""
	}
	return " " + strconv.Itoa(shift)
}
