package caesarlang

import (
	"errors"
	"strconv"
)

// Parser is an LL(1) recursive descent parser over a TokenStream.
// It never stops at the first error: errors are collected and parsing resumes
// at the next ';' or at end of input.
type Parser struct {
	stream TokenStream
	curr   *Token

	// shift is the amount of the most recent ShiftDecl, nil before the first one
	shift *int

	errs      []error
	maxErrors int
	// stopped is set after a stream failure or when maxErrors is reached
	stopped bool
}

func NewParser(stream TokenStream, options ...Option) *Parser {
	p := &Parser{
		stream: stream,
	}
	for _, option := range options {
		option.apply(p)
	}
	return p
}

// Parse consumes the whole stream. The returned result carries a Program only
// if no error was recorded.
func (p *Parser) Parse() *ParseResult {
	program := &Program{}

	p.load()
	for !p.stopped && p.curr.Kind != TokenEOF {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}

	if len(p.errs) > 0 {
		return &ParseResult{
			Errors: p.errs,
		}
	}
	return &ParseResult{
		Program: program,
	}
}

// load fetches the current token from the stream.
func (p *Parser) load() {
	tok, err := p.stream.Current()
	if err != nil {
		p.fail(err)
		return
	}
	p.curr = tok
}

func (p *Parser) advance() {
	if p.stopped {
		return
	}
	p.stream.Consume()
	p.load()
}

// fail records a stream error and ends the parse.
func (p *Parser) fail(err error) {
	p.errs = append(p.errs, err)
	p.stopped = true
	var pos Pos
	if p.curr != nil {
		pos = p.curr.Pos
	}
	p.curr = &Token{Kind: TokenEOF, Pos: pos}
}

func (p *Parser) report(err error) {
	if p.stopped {
		return
	}
	p.errs = append(p.errs, err)
	if p.maxErrors > 0 && len(p.errs) >= p.maxErrors {
		p.stopped = true
	}
}

// unexpected reports the current token as out of place.
// Invalid tokens are reported as lexical errors instead of syntax errors.
func (p *Parser) unexpected(expected ...TokenKind) {
	if p.curr.Kind == TokenInvalid {
		p.reportInvalid(p.curr)
		return
	}
	p.report(newSyntaxError(p.curr, expecting(expected...)))
}

func (p *Parser) reportInvalid(tok *Token) {
	err := ErrInvalidCharacter
	if len(tok.Text) > 0 && tok.Text[0] == '"' {
		err = ErrUnterminatedString
	}
	p.report(newLexicalError(tok, err))
}

// synchronize skips the current token, which has already been reported, and then
// everything up to and including the next ';', or up to end of input.
// Invalid tokens skipped on the way are still reported.
func (p *Parser) synchronize() {
	switch p.curr.Kind {
	case TokenEOF:
		return
	case TokenSemicolon:
		p.advance()
		return
	}
	p.advance()
	for !p.stopped {
		switch p.curr.Kind {
		case TokenEOF:
			return
		case TokenSemicolon:
			p.advance()
			return
		case TokenInvalid:
			p.reportInvalid(p.curr)
		}
		p.advance()
	}
}

func (p *Parser) parseStatement() Statement {
	switch p.curr.Kind {
	case TokenShift:
		return p.parseShift()
	case TokenEncode, TokenDecode:
		return p.parseCommand()
	}
	p.unexpected(TokenShift, TokenEncode, TokenDecode, TokenEOF)
	p.synchronize()
	return nil
}

// ShiftDecl := "shift" NUMBER ";"
func (p *Parser) parseShift() Statement {
	keyword := p.curr
	p.advance()

	if p.curr.Kind != TokenNumber {
		p.unexpected(TokenNumber)
		p.synchronize()
		return nil
	}
	amount, ok := p.number()
	if !ok {
		p.synchronize()
		return nil
	}
	p.advance()

	p.shift = &amount
	decl := &ShiftDecl{
		Pos:    keyword.Pos,
		Amount: amount,
	}
	p.terminate(TokenSemicolon)
	return decl
}

// EncodeStmt := "encode" STRING [ NUMBER ] ";"
// DecodeStmt := "decode" STRING [ NUMBER ] ";"
func (p *Parser) parseCommand() Statement {
	keyword := p.curr
	p.advance()

	if p.curr.Kind != TokenString {
		p.unexpected(TokenString)
		p.synchronize()
		return nil
	}
	text := p.curr.Text
	p.advance()

	var shift int
	explicit := false
	terminators := []TokenKind{TokenNumber, TokenSemicolon}
	if p.curr.Kind == TokenNumber {
		n, ok := p.number()
		if !ok {
			p.synchronize()
			return nil
		}
		p.advance()
		shift = n
		explicit = true
		terminators = []TokenKind{TokenSemicolon}
	} else if p.shift != nil {
		shift = *p.shift
	} else {
		p.report(newSemanticError(keyword.Pos, ErrMissingShiftContext))
	}

	var stmt Statement
	if keyword.Kind == TokenEncode {
		stmt = &EncodeStmt{
			Pos:      keyword.Pos,
			Text:     text,
			Shift:    shift,
			Explicit: explicit,
		}
	} else {
		stmt = &DecodeStmt{
			Pos:      keyword.Pos,
			Text:     text,
			Shift:    shift,
			Explicit: explicit,
		}
	}
	p.terminate(terminators...)
	return stmt
}

// terminate expects the closing ';'. When it is missing and the current token
// begins a new statement, parsing resumes there without skipping anything.
func (p *Parser) terminate(expected ...TokenKind) {
	if p.curr.Kind == TokenSemicolon {
		p.advance()
		return
	}
	p.unexpected(expected...)
	if p.curr.Kind.startsStatement() {
		return
	}
	p.synchronize()
}

// number converts the current NUMBER token.
func (p *Parser) number() (int, bool) {
	n, err := strconv.Atoi(p.curr.Text)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrNumberOutOfRange
		}
		p.report(newLexicalError(p.curr, err))
		return 0, false
	}
	return n, true
}
