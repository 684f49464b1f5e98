package caesarlang

import "fmt"

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

func (t *Token) String() string {
	if t.Kind == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenShift
	TokenEncode
	TokenDecode
	TokenIdentifier
	TokenNumber
	TokenString
	TokenLBrace
	TokenRBrace
	TokenSemicolon
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenInvalid:    "invalid",
	TokenShift:      "'shift'",
	TokenEncode:     "'encode'",
	TokenDecode:     "'decode'",
	TokenIdentifier: "identifier",
	TokenNumber:     "number",
	TokenString:     "string",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
	TokenSemicolon:  "';'",
	TokenEOF:        "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

var keywords = map[string]TokenKind{
	"shift":  TokenShift,
	"encode": TokenEncode,
	"decode": TokenDecode,
}

// startsStatement reports whether a token of this kind can begin a statement.
func (k TokenKind) startsStatement() bool {
	return k == TokenShift || k == TokenEncode || k == TokenDecode
}
