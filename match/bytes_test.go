package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
	"github.com/zostay/combo/token"
)

func assertConcat(t *testing.T, in string, r parser.Result) {
	t.Helper()
	assert.Equal(t, in, r.Consumed()+r.Remaining, "consumed + remaining == input")
}

func TestDigit(t *testing.T) {
	for c := 0; c < 256; c++ {
		in := string([]byte{byte(c), 'x'})
		r := match.Digit.Match(in)
		assertConcat(t, in, r)

		if c >= '0' && c <= '9' {
			assert.True(t, r.OK(), "digit %q", c)
			assert.Equal(t, in[:1], r.Consumed())
			assert.Equal(t, "x", r.Remaining)
		} else {
			assert.False(t, r.OK(), "non-digit %q", c)
			assert.Equal(t, in, r.Remaining)
		}
	}
}

func TestLetter(t *testing.T) {
	for c := 0; c < 256; c++ {
		in := string([]byte{byte(c)})
		r := match.Letter.Match(in)
		assertConcat(t, in, r)
		assert.Equal(t, c >= 'a' && c <= 'z', r.OK(), "letter %q", c)
	}
}

func TestCharIsLiteral(t *testing.T) {
	for _, c := range []byte(`^$\.*+?()[]{}|`) {
		r := match.Char(c).Match(string(c) + "1")
		assert.True(t, r.OK(), "char %q", c)
		assert.Equal(t, string(c), r.Consumed())
		assert.Equal(t, "1", r.Remaining)
	}

	// a '.' must not act as a wildcard
	r := match.Char('.').Match("a.")
	assert.False(t, r.OK())
	assert.Equal(t, "a.", r.Remaining)

	r = match.Char('(').Match("")
	assert.False(t, r.OK())
	assert.Equal(t, "", r.Remaining)
}

func TestPrimitivesConsumeAtMostOne(t *testing.T) {
	for _, m := range []parser.Matcher{match.Digit, match.Letter, match.Char('a')} {
		r := m.Match("aaa111")
		assert.LessOrEqual(t, len(r.Consumed()), 1)
	}
}

func TestPredicates(t *testing.T) {
	vowel := match.BytesInSet('a', 'e', 'i', 'o', 'u')
	lower := match.BytesInRange('a', 'z')
	digit := match.BytesInRange('0', '9')

	assert.True(t, vowel('e'))
	assert.False(t, vowel('b'))
	assert.True(t, match.AnyBytes(lower, digit)('7'))
	assert.False(t, match.AnyBytes()('7'))
	assert.True(t, match.NotBytes(lower, digit)('+'))
	assert.False(t, match.NotBytes(lower, digit)('q'))
	assert.True(t, match.ThisButNotThatBytes(lower, vowel)('b'))
	assert.False(t, match.ThisButNotThatBytes(lower, vowel)('a'))
}

func TestAndAlsoButNot(t *testing.T) {
	alnum := match.Letter.AndAlso(match.Digit)
	assert.True(t, alnum.Match("a").OK())
	assert.True(t, alnum.Match("5").OK())
	assert.False(t, alnum.Match("+").OK())

	consonant := match.Letter.ButNot(match.OneByte(token.Literal, match.BytesInSet('a', 'e', 'i', 'o', 'u')))
	assert.True(t, consonant.Match("z").OK())
	assert.False(t, consonant.Match("o").OK())
}
