package caesarlang

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
)

type Tokenizer struct {
	reader  *bufio.Reader
	source  *Source
	current *Token
	eof     *Token

	currPos Pos
	prevPos Pos
}

var _ TokenStream = new(Tokenizer)

func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{
		reader: bufio.NewReader(r),
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// NewSourceTokenizer tokenizes src and attaches it to every token position.
func NewSourceTokenizer(src *Source) *Tokenizer {
	t := NewTokenizer(strings.NewReader(src.Content))
	t.source = src
	t.currPos.Source = src
	return t
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.reader.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

// Next returns the current token and advances past it.
func (t *Tokenizer) Next() (*Token, error) {
	tok, err := t.Current()
	if err != nil {
		return nil, err
	}
	t.Consume()
	return tok, nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	if t.eof != nil {
		return t.eof, nil
	}

	for {
		t.skipWhitespace()
		startPos := t.currPos

		r, err := t.readRune()
		if err == io.EOF {
			t.eof = &Token{Kind: TokenEOF, Pos: startPos}
			return t.eof, nil
		}
		if err != nil {
			return nil, err
		}

		switch {
		case r == '/':
			next, err := t.readRune()
			if err != nil && err != io.EOF {
				return nil, err
			}
			if err == nil && next == '/' {
				if err := t.skipComment(); err != nil {
					return nil, err
				}
				continue
			}
			if err == nil {
				t.unreadRune()
			}
			return t.invalid(r, startPos), nil

		case r == '"':
			return t.parseString(startPos)

		case r == '-':
			next, err := t.readRune()
			if err != nil && err != io.EOF {
				return nil, err
			}
			if err == nil {
				t.unreadRune()
				if isDigit(next) {
					return t.parseNumber("-", startPos)
				}
			}
			return t.invalid(r, startPos), nil

		case isDigit(r):
			t.unreadRune()
			return t.parseNumber("", startPos)

		case unicode.IsLetter(r):
			t.unreadRune()
			return t.parseWord(startPos)

		case r == '{':
			return &Token{Kind: TokenLBrace, Text: "{", Pos: startPos}, nil
		case r == '}':
			return &Token{Kind: TokenRBrace, Text: "}", Pos: startPos}, nil
		case r == ';':
			return &Token{Kind: TokenSemicolon, Text: ";", Pos: startPos}, nil
		}

		return t.invalid(r, startPos), nil
	}
}

func (t *Tokenizer) invalid(r rune, pos Pos) *Token {
	return &Token{Kind: TokenInvalid, Text: string(r), Pos: pos}
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) skipComment() error {
	for {
		r, err := t.readRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if r == '\n' {
			return nil
		}
	}
}

// parseWord reads an identifier-shaped word and classifies keywords.
func (t *Tokenizer) parseWord(startPos Pos) (*Token, error) {
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsLetter(r) && !isDigit(r) && r != '_' {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	text := buf.String()
	kind, ok := keywords[text]
	if !ok {
		kind = TokenIdentifier
	}
	return &Token{
		Kind: kind,
		Text: text,
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseNumber(prefix string, startPos Pos) (*Token, error) {
	var buf bytes.Buffer
	buf.WriteString(prefix)
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isDigit(r) {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return &Token{
		Kind: TokenNumber,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}

// parseString reads a double quoted string after its opening quote.
// Only \" and \\ are escapes; other backslashes are kept as written.
func (t *Tokenizer) parseString(startPos Pos) (*Token, error) {
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			// Unmatched quote
			return &Token{Kind: TokenInvalid, Text: `"` + buf.String(), Pos: startPos}, nil
		}
		if err != nil {
			return nil, err
		}
		if r == '"' {
			break
		}

		if r == '\\' {
			next, err := t.readRune()
			if err == io.EOF {
				buf.WriteRune(r)
				continue
			}
			if err != nil {
				return nil, err
			}
			switch next {
			case '\\', '"':
				buf.WriteRune(next)
			default:
				buf.WriteRune('\\')
				buf.WriteRune(next)
			}
		} else {
			buf.WriteRune(r)
		}
	}
	return &Token{
		Kind: TokenString,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
