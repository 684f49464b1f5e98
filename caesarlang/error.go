package caesarlang

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrNumberOutOfRange    = errors.New("number out of range")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrMissingShiftContext = errors.New("missing shift context")
)

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	return fmt.Sprintf("%s: %s", p.Pos, p.Err.Error())
}

func (p PosError) Unwrap() error {
	return p.Err
}

// Excerpt renders the offending source line with a caret under the error column.
// It returns an empty string when the source is unknown.
func (p PosError) Excerpt() string {
	if p.Pos.Source == nil {
		return ""
	}
	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}

	var sb strings.Builder
	line := lines[idx]
	sb.WriteString(line)
	sb.WriteString("\n")

	// Caret
	runes := []rune(line)
	col := p.Pos.Column - 1
	for i, r := range runes {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

// LexicalError reports an invalid token: a stray character, an unterminated
// string or an unrepresentable number.
type LexicalError struct {
	PosError
	Text string
}

// SyntaxError reports a token that does not fit the grammar at its position.
type SyntaxError struct {
	PosError
	Got      *Token
	Expected []TokenKind
}

// SemanticError reports a well-formed statement that cannot be given a meaning.
type SemanticError struct {
	PosError
}

func newLexicalError(tok *Token, err error) *LexicalError {
	return &LexicalError{
		PosError: PosError{
			Err: fmt.Errorf("%w: %q", err, tok.Text),
			Pos: tok.Pos,
		},
		Text: tok.Text,
	}
}

func newSyntaxError(tok *Token, expected []TokenKind) *SyntaxError {
	names := make([]string, 0, len(expected))
	for _, kind := range expected {
		names = append(names, kind.String())
	}
	return &SyntaxError{
		PosError: PosError{
			Err: fmt.Errorf("%w: got %s, expected %s",
				ErrUnexpectedToken,
				tok,
				strings.Join(names, " or "),
			),
			Pos: tok.Pos,
		},
		Got:      tok,
		Expected: expected,
	}
}

func newSemanticError(pos Pos, err error) *SemanticError {
	return &SemanticError{
		PosError: PosError{
			Err: err,
			Pos: pos,
		},
	}
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
