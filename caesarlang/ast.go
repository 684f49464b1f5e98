package caesarlang

type Program struct {
	Statements []Statement
}

// Statement is one of *ShiftDecl, *EncodeStmt or *DecodeStmt.
type Statement interface {
	StatementPos() Pos
	isStatement()
}

// ShiftDecl sets the shift amount inherited by later encode and decode
// statements. Amount is kept as written, sign included.
type ShiftDecl struct {
	Pos    Pos
	Amount int
}

type EncodeStmt struct {
	Pos  Pos
	Text string
	// Shift is the explicit amount when Explicit is true, otherwise the amount
	// of the nearest preceding ShiftDecl.
	Shift    int
	Explicit bool
}

type DecodeStmt struct {
	Pos      Pos
	Text     string
	Shift    int
	Explicit bool
}

var (
	_ Statement = new(ShiftDecl)
	_ Statement = new(EncodeStmt)
	_ Statement = new(DecodeStmt)
)

func (s *ShiftDecl) StatementPos() Pos  { return s.Pos }
func (s *EncodeStmt) StatementPos() Pos { return s.Pos }
func (s *DecodeStmt) StatementPos() Pos { return s.Pos }

func (*ShiftDecl) isStatement()  {}
func (*EncodeStmt) isStatement() {}
func (*DecodeStmt) isStatement() {}

// Equal compares two programs structurally, ignoring positions.
func Equal(a, b *Program) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Statements) != len(b.Statements) {
		return false
	}
	for i, stmt := range a.Statements {
		if !statementEqual(stmt, b.Statements[i]) {
			return false
		}
	}
	return true
}

func statementEqual(a, b Statement) bool {
	switch a := a.(type) {
	case *ShiftDecl:
		b, ok := b.(*ShiftDecl)
		return ok && a.Amount == b.Amount
	case *EncodeStmt:
		b, ok := b.(*EncodeStmt)
		return ok && a.Text == b.Text && a.Shift == b.Shift && a.Explicit == b.Explicit
	case *DecodeStmt:
		b, ok := b.(*DecodeStmt)
		return ok && a.Text == b.Text && a.Shift == b.Shift && a.Explicit == b.Explicit
	}
	return false
}
