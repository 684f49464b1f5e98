package caesarlang

import (
	"errors"
	"io"
)

// ParseResult holds either an accepted Program or the errors that rejected it.
type ParseResult struct {
	Program *Program
	Errors  []error
}

func (r *ParseResult) OK() bool {
	return len(r.Errors) == 0
}

// Err joins all recorded errors, or returns nil for an accepted program.
func (r *ParseResult) Err() error {
	return errors.Join(r.Errors...)
}

type Option interface {
	apply(*Parser)
}

type optionFunc func(*Parser)

func (o optionFunc) apply(p *Parser) {
	o(p)
}

// WithMaxErrors stops parsing once n errors are recorded. Zero means no limit.
func WithMaxErrors(n int) Option {
	return optionFunc(func(p *Parser) {
		p.maxErrors = n
	})
}

func Parse(r io.Reader, options ...Option) *ParseResult {
	return NewParser(NewTokenizer(r), options...).Parse()
}

// ParseSource parses src; error positions refer to it for excerpts.
func ParseSource(src *Source, options ...Option) *ParseResult {
	return NewParser(NewSourceTokenizer(src), options...).Parse()
}

func ParseProgram(content string, options ...Option) *ParseResult {
	return ParseSource(NewSource("", content), options...)
}
