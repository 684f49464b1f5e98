package caesarlang

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestParseShiftThenEncode(t *testing.T) {
	result := ParseProgram(`shift 3; encode "abc";`)
	if !result.OK() {
		t.Fatal(result.Err())
	}
	stmts := result.Program.Statements
	if len(stmts) != 2 {
		t.Fatalf("got %d statements", len(stmts))
	}
	shift, ok := stmts[0].(*ShiftDecl)
	if !ok || shift.Amount != 3 {
		t.Fatalf("got %#v", stmts[0])
	}
	encode, ok := stmts[1].(*EncodeStmt)
	if !ok {
		t.Fatalf("got %#v", stmts[1])
	}
	if encode.Text != "abc" || encode.Shift != 3 || encode.Explicit {
		t.Fatalf("got %#v", encode)
	}
	if encode.Pos.Line != 1 || encode.Pos.Column != 10 {
		t.Fatalf("got %v", encode.Pos)
	}
}

func TestParseMissingShiftContext(t *testing.T) {
	result := ParseProgram(`encode "abc";`)
	if result.OK() {
		t.Fatal("should fail")
	}
	if result.Program != nil {
		t.Fatal("rejected result should not carry a program")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("got %v", result.Errors)
	}
	var semErr *SemanticError
	if !errors.As(result.Errors[0], &semErr) {
		t.Fatalf("got %T", result.Errors[0])
	}
	if !errors.Is(semErr, ErrMissingShiftContext) {
		t.Fatalf("got %v", semErr)
	}
	if semErr.Pos.Line != 1 || semErr.Pos.Column != 1 {
		t.Fatalf("got %v", semErr.Pos)
	}
}

func TestParseMissingTerminator(t *testing.T) {
	result := ParseProgram(`shift 1 encode "x";`)
	if result.OK() {
		t.Fatal("should fail")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("got %v", result.Errors)
	}
	var synErr *SyntaxError
	if !errors.As(result.Errors[0], &synErr) {
		t.Fatalf("got %T", result.Errors[0])
	}
	if !errors.Is(synErr, ErrUnexpectedToken) {
		t.Fatalf("got %v", synErr)
	}
	if synErr.Got.Kind != TokenEncode {
		t.Fatalf("got %v", synErr.Got.Kind)
	}
	if !reflect.DeepEqual(synErr.Expected, []TokenKind{TokenSemicolon}) {
		t.Fatalf("got %v", synErr.Expected)
	}
	if synErr.Pos.Column != 9 {
		t.Fatalf("got %v", synErr.Pos)
	}
	if !strings.Contains(synErr.Error(), "expected ';'") {
		t.Fatalf("got %s", synErr.Error())
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "// only a comment"} {
		result := ParseProgram(input)
		if !result.OK() {
			t.Fatalf("%q: %v", input, result.Err())
		}
		if result.Program == nil {
			t.Fatalf("%q: nil program", input)
		}
		if len(result.Program.Statements) != 0 {
			t.Fatalf("%q: got %d statements", input, len(result.Program.Statements))
		}
	}
}

func TestParseUnterminatedString(t *testing.T) {
	result := ParseProgram(`encode "abc`)
	if len(result.Errors) != 1 {
		t.Fatalf("got %v", result.Errors)
	}
	var lexErr *LexicalError
	if !errors.As(result.Errors[0], &lexErr) {
		t.Fatalf("got %T", result.Errors[0])
	}
	if !errors.Is(lexErr, ErrUnterminatedString) {
		t.Fatalf("got %v", lexErr)
	}
	if lexErr.Text != `"abc` {
		t.Fatalf("got %q", lexErr.Text)
	}
	if lexErr.Pos.Column != 8 {
		t.Fatalf("got %v", lexErr.Pos)
	}
}

func TestParseAccumulatesErrors(t *testing.T) {
	result := ParseProgram(`foo; shift x; encode "a" 2; @; decode "b";`)
	if result.OK() {
		t.Fatal("should fail")
	}
	if len(result.Errors) != 4 {
		t.Fatalf("got %v", result.Errors)
	}
	var synErr *SyntaxError
	var lexErr *LexicalError
	var semErr *SemanticError
	if !errors.As(result.Errors[0], &synErr) || synErr.Got.Text != "foo" {
		t.Fatalf("got %v", result.Errors[0])
	}
	if !reflect.DeepEqual(synErr.Expected, []TokenKind{TokenShift, TokenEncode, TokenDecode, TokenEOF}) {
		t.Fatalf("got %v", synErr.Expected)
	}
	if !errors.As(result.Errors[1], &synErr) || synErr.Got.Text != "x" {
		t.Fatalf("got %v", result.Errors[1])
	}
	if !errors.As(result.Errors[2], &lexErr) || !errors.Is(lexErr, ErrInvalidCharacter) {
		t.Fatalf("got %v", result.Errors[2])
	}
	if !errors.As(result.Errors[3], &semErr) {
		t.Fatalf("got %v", result.Errors[3])
	}

	joined := result.Err()
	for _, err := range result.Errors {
		if !errors.Is(joined, err) {
			t.Fatalf("%v not in joined error", err)
		}
	}
}

func TestParseRecovery(t *testing.T) {
	tests := []struct {
		input    string
		errs     int
		sentinel error
	}{
		{`shift 1`, 1, ErrUnexpectedToken},
		{`shift 1 @ encode "x";`, 1, ErrInvalidCharacter},
		{`shift ; encode "x" 1;`, 1, ErrUnexpectedToken},
		{`shift 2; encode 3; decode "y";`, 1, ErrUnexpectedToken},
		{`shift 2; encode "x" y z; decode "y";`, 1, ErrUnexpectedToken},
		{`shift 2; } { decode "y";`, 1, ErrUnexpectedToken},
		{`shift 99999999999999999999999; encode "x" 1;`, 1, ErrNumberOutOfRange},
		{`shift 1; encode "x" 1 # ;`, 1, ErrInvalidCharacter},
		{`shift 1 @ @ ;`, 2, ErrInvalidCharacter},
		{`;`, 1, ErrUnexpectedToken},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result := ParseProgram(test.input)
			if len(result.Errors) != test.errs {
				t.Fatalf("got %v", result.Errors)
			}
			if !errors.Is(result.Errors[0], test.sentinel) {
				t.Fatalf("got %v", result.Errors[0])
			}
		})
	}
}

func TestParseShiftSemantics(t *testing.T) {
	result := ParseProgram(`
		shift -3;
		decode "abc" -29;
		shift 1;
		shift 27;
		encode "x";
		decode "y";
	`)
	if !result.OK() {
		t.Fatal(result.Err())
	}
	stmts := result.Program.Statements
	if len(stmts) != 6 {
		t.Fatalf("got %d", len(stmts))
	}
	if stmts[0].(*ShiftDecl).Amount != -3 {
		t.Fatal()
	}
	if d := stmts[1].(*DecodeStmt); d.Shift != -29 || !d.Explicit {
		t.Fatalf("got %#v", d)
	}
	if e := stmts[4].(*EncodeStmt); e.Shift != 27 || e.Explicit {
		t.Fatalf("got %#v", e)
	}
	if d := stmts[5].(*DecodeStmt); d.Shift != 27 || d.Explicit {
		t.Fatalf("got %#v", d)
	}
}

func TestParseMaxErrors(t *testing.T) {
	result := ParseProgram(`a; b; c; d;`, WithMaxErrors(2))
	if len(result.Errors) != 2 {
		t.Fatalf("got %v", result.Errors)
	}
	result = ParseProgram(`a; b; c; d;`)
	if len(result.Errors) != 4 {
		t.Fatalf("got %v", result.Errors)
	}
}

func TestParseReaderError(t *testing.T) {
	boom := errors.New("boom")
	result := Parse(iotest.ErrReader(boom))
	if result.OK() {
		t.Fatal("should fail")
	}
	if !errors.Is(result.Err(), boom) {
		t.Fatalf("got %v", result.Err())
	}
}

func TestParseSliceTokenStream(t *testing.T) {
	stream := NewSliceTokenStream([]*Token{
		{Kind: TokenShift, Text: "shift", Pos: Pos{Line: 1, Column: 1}},
		{Kind: TokenNumber, Text: "5", Pos: Pos{Line: 1, Column: 7}},
		{Kind: TokenSemicolon, Text: ";", Pos: Pos{Line: 1, Column: 8}},
		{Kind: TokenDecode, Text: "decode", Pos: Pos{Line: 2, Column: 1}},
		{Kind: TokenString, Text: "FGH", Pos: Pos{Line: 2, Column: 8}},
		{Kind: TokenSemicolon, Text: ";", Pos: Pos{Line: 2, Column: 13}},
	})
	result := NewParser(stream).Parse()
	if !result.OK() {
		t.Fatal(result.Err())
	}
	if d := result.Program.Statements[1].(*DecodeStmt); d.Shift != 5 || d.Text != "FGH" {
		t.Fatalf("got %#v", d)
	}
}

func TestParseIdempotent(t *testing.T) {
	src := `shift 4; encode "hello world"; decode "x" -1; // done`
	a := ParseProgram(src)
	b := ParseProgram(src)
	if !a.OK() || !b.OK() {
		t.Fatal("should parse")
	}
	if !Equal(a.Program, b.Program) {
		t.Fatal("not equal")
	}
	if !reflect.DeepEqual(a.Program, b.Program) {
		t.Fatal("not deep equal")
	}
}

func TestParseStatementCount(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		n := rnd.IntN(20)
		var sb strings.Builder
		// a leading shift makes every implicit command valid
		sb.WriteString("shift 1;\n")
		for range n {
			switch rnd.IntN(5) {
			case 0:
				fmt.Fprintf(&sb, "shift %d;\n", rnd.IntN(100)-50)
			case 1:
				fmt.Fprintf(&sb, "encode %q;\n", "abc")
			case 2:
				fmt.Fprintf(&sb, "encode \"x y\" %d ;", rnd.IntN(30))
			case 3:
				fmt.Fprintf(&sb, "decode \"q\" // comment\n;")
			case 4:
				fmt.Fprintf(&sb, "  decode \"\" -%d;", rnd.IntN(9))
			}
		}
		result := ParseProgram(sb.String())
		if !result.OK() {
			t.Fatalf("%s: %v", sb.String(), result.Err())
		}
		if got := len(result.Program.Statements); got != n+1 {
			t.Fatalf("%s: got %d statements, want %d", sb.String(), got, n+1)
		}
	}
}
