package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/combo/parser"
	"github.com/zostay/combo/token"
)

// firstByte succeeds on any non-empty input by consuming one byte.
var firstByte = parser.MatcherFunc(func(in string) parser.Result {
	if in == "" {
		return parser.Failure(in)
	}
	return parser.Success(&parser.Match{Tag: token.Literal, Content: in[:1]}, in[1:])
})

func TestFormatTrace(t *testing.T) {
	assert.Equal(t, "TRY expr(2+3)", parser.FormatTrace(parser.StageTry, "expr", "2+3", nil))
	assert.Equal(t, "ERR expr(0123456789…)", parser.FormatTrace(parser.StageFail, "expr", "0123456789abc", nil))
	assert.Equal(t, `GOT one(ab) = Match(1, "a")`,
		parser.FormatTrace(parser.StageGot, "one", "ab", &parser.Match{Tag: token.Literal, Content: "a"}))
	assert.Equal(t, "Stage(7)", parser.Stage(7).String())
}

func TestTrace(t *testing.T) {
	var lines []string
	tr := func(v ...any) {
		require.Len(t, v, 1)
		lines = append(lines, v[0].(string))
	}

	m := parser.Trace("one", firstByte, tr)

	r := m.Match("xy")
	assert.Equal(t, "x", r.Consumed())
	assert.Equal(t, "y", r.Remaining)

	r = m.Match("")
	assert.False(t, r.OK())

	assert.Equal(t, []string{
		"TRY one(xy)",
		`GOT one(xy) = Match(1, "x")`,
		"TRY one()",
		"ERR one()",
	}, lines)
}

func TestTraceNil(t *testing.T) {
	m := parser.Trace("one", firstByte, nil)
	r := m.Match("q")
	assert.Equal(t, "q", r.Consumed())
}
