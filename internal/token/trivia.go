package token

import "litlint/internal/source"

// TriviaKind classifies non-significant source text attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaComment          // '#' to end of line
	TriviaLineContinuation // backslash followed by a newline
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaComment:
		return "comment"
	case TriviaLineContinuation:
		return "line-continuation"
	}
	return "trivia(?)"
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
