package parser

// Matcher is the interface every parser in this module implements. A Matcher
// inspects a prefix of the input it is given and reports what it consumed and
// what remains in a Result. Matchers are pure: the same input always produces
// the same Result and no state is shared between calls.
type Matcher interface {
	Match(in string) Result
}

// MatcherFunc adapts an ordinary function to the Matcher interface.
//
// If the match is successful, the Result carries a non-nil Match and the
// remaining input. It is possible for a match to match zero bytes.
//
// If the match fails, the Result carries a nil Match and the remaining input
// is the whole input that was given.
type MatcherFunc func(in string) Result

// Match calls mfun(in).
func (mfun MatcherFunc) Match(in string) Result {
	return mfun(in)
}
