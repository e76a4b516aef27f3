package parser

import (
	"fmt"

	"github.com/zostay/combo/token"
)

// Match is the object used to represent some segment of a parsed string.
type Match struct {
	Tag      token.Tag // an identifier describing what the match represents
	Content  string    // the full content of the match
	Submatch []*Match  // identifies a list of submatches
}

// Length returns the number of bytes matched for this match.
func (m *Match) Length() int {
	if m != nil {
		return len(m.Content)
	}
	return 0
}

// String returns a compact representation of the match for tracing.
func (m *Match) String() string {
	if m == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Match(%d, %q)", m.Tag, m.Content)
}

// BuildMatch is a short hand for building a match whose content is the
// concatenation of the given submatches. Nil submatches are skipped.
func BuildMatch(t token.Tag, ms ...*Match) *Match {
	s := make([]*Match, 0, len(ms))
	n := 0
	for _, m := range ms {
		if m != nil {
			n += len(m.Content)
		}
	}

	c := make([]byte, 0, n)
	for _, m := range ms {
		if m == nil {
			continue
		}
		s = append(s, m)
		c = append(c, m.Content...)
	}

	return &Match{Tag: t, Content: string(c), Submatch: s}
}

// Result is what every Matcher returns. On success, Match is non-nil and
// Remaining holds the input that follows the matched prefix. On failure, Match
// is nil and Remaining holds the entire input given to the Matcher.
//
// For any input in, Consumed() + Remaining == in.
type Result struct {
	Match     *Match
	Remaining string
}

// Success builds a successful Result.
func Success(m *Match, rest string) Result {
	return Result{Match: m, Remaining: rest}
}

// Failure builds a failed Result that hands the whole input back.
func Failure(in string) Result {
	return Result{Remaining: in}
}

// OK reports whether the match succeeded. A match of zero bytes is still a
// success.
func (r Result) OK() bool {
	return r.Match != nil
}

// Consumed returns the matched prefix, or the empty string on failure.
func (r Result) Consumed() string {
	if r.Match == nil {
		return ""
	}
	return r.Match.Content
}

// String renders the result the way the combo command prints it.
func (r Result) String() string {
	return fmt.Sprintf("consumed: %s\nunconsumed: %s", r.Consumed(), r.Remaining)
}
