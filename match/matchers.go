package match

import (
	"github.com/zostay/combo/parser"
	"github.com/zostay/combo/token"
)

var (
	// TDigits tags the matches made by Digits.
	TDigits = token.NextTag()

	// TLetters tags the matches made by Letters.
	TLetters = token.NextTag()
)

var (
	// Digits matches as many digits as possible, requiring at least one.
	Digits = Many(TDigits, 1, Digit)

	// Letters matches as many lowercase letters as possible, requiring at
	// least one.
	Letters = Many(TLetters, 1, Letter)
)

// Many returns a Matcher that matches the given matcher as many times as
// possible one after another on the input. Repetition stops when the input is
// used up, when the matcher fails, or when the matcher succeeds without
// consuming anything; that last empty match is not kept. If the number of
// matches is fewer than min, it fails.
func Many(
	t token.Tag,
	min int,
	mtch parser.Matcher,
) parser.MatcherFunc {
	return func(in string) parser.Result {
		ms := make([]*parser.Match, 0, min)
		rest := in

		for rest != "" {
			r := mtch.Match(rest)
			if !r.OK() || r.Remaining == rest {
				break
			}

			ms = append(ms, r.Match)
			rest = r.Remaining
		}

		if len(ms) < min {
			return parser.Failure(in)
		}

		return parser.Success(parser.BuildMatch(t, ms...), rest)
	}
}

// Some returns a Matcher that matches mtch greedily zero or more times. Zero
// matches is a success with an empty Match.
func Some(mtch parser.Matcher) parser.MatcherFunc {
	return Many(token.Literal, 0, mtch)
}

// Seq returns a Matcher that applies each passed Matcher in turn against the
// input left over by the one before. If any Matcher in the sequence fails, the
// whole sequence fails and hands back the input it started with, not the
// input at the point of failure.
func Seq(
	t token.Tag,
	mtchs ...parser.Matcher,
) parser.MatcherFunc {
	return func(in string) parser.Result {
		ms := make([]*parser.Match, 0, len(mtchs))
		rest := in

		for _, mtch := range mtchs {
			r := mtch.Match(rest)
			if !r.OK() {
				return parser.Failure(in)
			}

			ms = append(ms, r.Match)
			rest = r.Remaining
		}

		return parser.Success(parser.BuildMatch(t, ms...), rest)
	}
}

// Alternative is one side of a choice: either a Single matcher or a Group of
// matchers applied as a sequence. The zero Alternative never matches.
type Alternative struct {
	mtchs []parser.Matcher
	group bool
}

// Single makes an Alternative of one matcher.
func Single(mtch parser.Matcher) Alternative {
	return Alternative{mtchs: []parser.Matcher{mtch}}
}

// Group makes an Alternative that must match all of mtchs in order.
func Group(mtchs ...parser.Matcher) Alternative {
	return Alternative{mtchs: mtchs, group: true}
}

// Match applies the alternative to in.
func (a Alternative) Match(in string) parser.Result {
	switch {
	case a.group:
		return Seq(token.None, a.mtchs...).Match(in)
	case len(a.mtchs) == 0:
		return parser.Failure(in)
	default:
		return a.mtchs[0].Match(in)
	}
}

// First returns a matcher that will try each alternative against the same
// input and immediately returns on the first one that succeeds. Returns the
// failure of the last alternative if none succeed.
func First(alts ...Alternative) parser.MatcherFunc {
	return func(in string) parser.Result {
		r := parser.Failure(in)
		for _, alt := range alts {
			r = alt.Match(in)
			if r.OK() {
				return r
			}
		}

		return r
	}
}

// Choice returns a Matcher that tries a and, only if a fails, tries b against
// the original input. The winning Match is wrapped in a Match tagged t.
func Choice(t token.Tag, a, b Alternative) parser.MatcherFunc {
	first := First(a, b)
	return func(in string) parser.Result {
		r := first(in)
		if !r.OK() {
			return r
		}

		return parser.Success(parser.BuildMatch(t, r.Match), r.Remaining)
	}
}

// Optional returns a Matcher that returns the Match when the called Matcher
// matches, but also returns an empty Match when the called Matcher does not
// match. The token.Tag on the empty Match is token.None.
func Optional(mtch parser.Matcher) parser.MatcherFunc {
	return func(in string) parser.Result {
		if r := mtch.Match(in); r.OK() {
			return r
		}

		return parser.Success(&parser.Match{Tag: token.None}, in)
	}
}

// selectLongest is an internal helper used to find the longest successful
// result out of a list of results. It returns -1 if none succeeded.
func selectLongest(rs []parser.Result) int {
	ln := -1
	for n, r := range rs {
		if !r.OK() {
			continue
		}

		if ln == -1 || r.Match.Length() > rs[ln].Match.Length() {
			ln = n
		}
	}

	return ln
}

// Longest returns a Matcher that tries all the given matchers against the
// same input. It keeps the longest match found and discards the rest. Ties go
// to the earliest matcher.
func Longest(mtchs ...parser.Matcher) parser.MatcherFunc {
	return func(in string) parser.Result {
		rs := make([]parser.Result, len(mtchs))
		for i, mtch := range mtchs {
			rs[i] = mtch.Match(in)
		}

		if w := selectLongest(rs); w != -1 {
			return rs[w]
		}

		return parser.Failure(in)
	}
}

// String returns a Matcher that matches the given string byte by byte.
func String(t token.Tag, s string) parser.MatcherFunc {
	byteMatchers := make([]parser.Matcher, 0, len(s))
	for i := 0; i < len(s); i++ {
		byteMatchers = append(byteMatchers, Char(s[i]))
	}
	return Seq(t, byteMatchers...)
}
