package caesarlang

// TokenStream is a forward-only source of tokens with one token of lookahead.
// Current returns the same token until Consume is called; after the end of input
// it keeps returning a TokenEOF token.
type TokenStream interface {
	Current() (*Token, error)
	Consume()
}

type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (*Token, error) {
	if s.idx >= len(s.tokens) {
		var pos Pos
		if n := len(s.tokens); n > 0 {
			pos = s.tokens[n-1].Pos
		}
		return &Token{Kind: TokenEOF, Pos: pos}, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
