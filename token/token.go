package token

// Tag is the abstract tag identifier used to tag matches by what they
// represent. Tags let a caller tell a number apart from a parenthesized
// expression without inspecting the content.
type Tag int

// A few standard tags for matches.
const (
	// None is the tag to use for matches that aren't really matches, such as
	// the empty Match returned by match.Optional or the anonymous sequence
	// built for a match.Group alternative.
	None Tag = iota

	// Literal is the most generic tag. Single characters get this tag.
	Literal

	// Last identifies the first non-built-in tag. No guarantee is made that
	// this will never change.
	Last
)

var prevTag = Last

// NextTag provides an interface for assigning tags serial numbers at runtime to
// avoid conflicts between tags when parsers from different packages are mixed
// and matched. This returns the next available tag and should be called during
// package initialization.
func NextTag() Tag {
	prevTag++
	return prevTag
}
