package match

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/combo/parser"
	"github.com/zostay/combo/token"
)

// BytePredicate is a function that returns true if it matches a single byte or
// false if it does not.
type BytePredicate func(c byte) bool

// BytesInSet creates a BytePredicate from the set of bytes given. The bytes are
// compared for equality, so characters that are special in other matching
// languages, like '.', '(' or '*', only ever match themselves.
func BytesInSet(cs ...byte) BytePredicate {
	return func(b byte) bool {
		for _, c := range cs {
			if c == b {
				return true
			}
		}
		return false
	}
}

// BytesInRange creates a BytePredicate that matches any byte in the given
// range. The match is inclusive so bytes equal to either end point are also
// matched.
func BytesInRange(cs, ce byte) BytePredicate {
	return func(b byte) bool {
		return b >= cs && b <= ce
	}
}

// AnyBytes creates a combined BytePredicate that matches a byte that matches
// any of the given predicates.
func AnyBytes(preds ...BytePredicate) BytePredicate {
	switch len(preds) {
	case 0:
		return func(byte) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(b byte) bool {
			for _, pred := range preds {
				if pred(b) {
					return true
				}
			}
			return false
		}
	}
}

// NotBytes creates a combined BytePredicate that matches a byte that does not
// match any of the given predicates.
func NotBytes(preds ...BytePredicate) BytePredicate {
	return func(b byte) bool {
		for _, pred := range preds {
			if pred(b) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatBytes creates a combined BytePredicate that matches a byte that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThatBytes(this, that BytePredicate) BytePredicate {
	return func(b byte) bool {
		return this(b) && !that(b)
	}
}

// Bytes is the Matcher returned by OneByte. It never consumes more than a
// single byte. It provides a number of tools that allow this Matcher to be
// combined with other Bytes Matchers.
type Bytes struct {
	t    token.Tag
	pred BytePredicate
}

// OneByte returns a Matcher that matches exactly one byte if the first byte of
// the input matches any of the given predicates. If there's a match then a
// Match with the given token.Tag is returned for the matching byte. Otherwise,
// the match fails and the whole input is handed back.
func OneByte(
	t token.Tag,
	preds ...BytePredicate,
) *Bytes {
	return &Bytes{
		t:    t,
		pred: AnyBytes(preds...),
	}
}

// Match inspects only the first byte of in.
func (b *Bytes) Match(in string) parser.Result {
	if len(in) == 0 || !b.pred(in[0]) {
		return parser.Failure(in)
	}

	return parser.Success(&parser.Match{Tag: b.t, Content: in[:1]}, in[1:])
}

func extractPredFromBytes(b *Bytes) BytePredicate {
	return b.pred
}

// AndAlso creates a new Bytes Matcher which combines the predicate of this
// Bytes Matcher with predicates of the given Bytes Matchers such that a match
// occurs if the next byte in the input matches any of those predicates. The
// returned Match (when found), will have the token.Tag of this Bytes Matcher.
func (b *Bytes) AndAlso(bs ...*Bytes) *Bytes {
	preds := append([]BytePredicate{b.pred}, slices.Map(bs, extractPredFromBytes)...)
	return &Bytes{
		t:    b.t,
		pred: AnyBytes(preds...),
	}
}

// ButNot creates a new Bytes Matcher which combines the predicate of this
// Bytes Matcher with predicates of the given Bytes Matchers such that a match
// is successful if it matches this Bytes Matcher, but not those.
func (b *Bytes) ButNot(bs ...*Bytes) *Bytes {
	preds := slices.Map(bs, extractPredFromBytes)
	return &Bytes{
		t:    b.t,
		pred: ThisButNotThatBytes(b.pred, AnyBytes(preds...)),
	}
}

// Char returns a Matcher for exactly the byte c.
func Char(c byte) *Bytes {
	return OneByte(token.Literal, BytesInSet(c))
}

var (
	// Digit matches a single byte from '0' to '9'.
	Digit = OneByte(token.Literal, BytesInRange('0', '9'))

	// Letter matches a single lowercase byte from 'a' to 'z'.
	Letter = OneByte(token.Literal, BytesInRange('a', 'z'))
)
