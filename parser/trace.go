package parser

import (
	"fmt"
	"strings"
)

// Tracer is a function that is use to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println or (*zap.SugaredLogger).Debug.
type Tracer func(v ...any)

// Stage identifies the point in a match attempt a trace line describes.
type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
)

// previewLen is how much of the input is shown in each trace line.
const previewLen = 10

func (s Stage) String() string {
	switch s {
	case StageFail:
		return "ERR"
	case StageGot:
		return "GOT"
	case StageTry:
		return "TRY"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// FormatTrace builds a single trace line: the stage, the name of the matcher,
// a preview of the input, and the match when one was made.
func FormatTrace(stage Stage, name, in string, m *Match) string {
	out := &strings.Builder{}
	fmt.Fprint(out, stage, " ", name, "(")

	if len(in) > previewLen {
		fmt.Fprint(out, in[:previewLen], "…")
	} else {
		fmt.Fprint(out, in)
	}
	fmt.Fprint(out, ")")

	if m != nil {
		fmt.Fprintf(out, " = %v", m)
	}

	return out.String()
}

// Trace wraps m so that every call reports TRY before matching and GOT or ERR
// afterward to tr. The Result is passed through untouched. When tr is nil, m
// is returned unwrapped.
func Trace(name string, m Matcher, tr Tracer) Matcher {
	if tr == nil {
		return m
	}

	return MatcherFunc(func(in string) Result {
		tr(FormatTrace(StageTry, name, in, nil))

		r := m.Match(in)
		if r.OK() {
			tr(FormatTrace(StageGot, name, in, r.Match))
		} else {
			tr(FormatTrace(StageFail, name, in, nil))
		}

		return r
	})
}
