package types

import "strings"

// A Sentence is an ordered list of tokens, an id assigned by the caller and
// the surface text the tokens were read from.
type Sentence struct {
	ID     string
	Text   string
	Tokens []*Token
	// Skipped counts the malformed segments left out of the sentence
	Skipped int
}

func NewSentence() *Sentence {
	return &Sentence{
		Tokens: make([]*Token, 0, 16),
	}
}

// AddToken appends token, numbering it from 1 and linking its spacing flags
// with the preceding token.
func (s *Sentence) AddToken(token *Token) {
	token.Pos = len(s.Tokens) + 1
	token.SpaceBefore = len(token.Leading) > 0
	if token.SpaceBefore && len(s.Tokens) > 0 {
		s.Tokens[len(s.Tokens)-1].SpaceAfter = true
	}
	s.Tokens = append(s.Tokens, token)
}

// ReconstructText rebuilds the surface text from the tokens and the literal
// text recorded before each of them.
func (s *Sentence) ReconstructText() string {
	var b strings.Builder
	for _, token := range s.Tokens {
		b.WriteString(token.Leading)
		b.WriteString(token.Surf)
	}
	return b.String()
}

func (s *Sentence) NumOOV() int {
	var n int
	for _, token := range s.Tokens {
		if token.IsOOV() {
			n++
		}
	}
	return n
}
