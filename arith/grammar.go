// Package arith is a recursive descent grammar for arithmetic expressions made
// of unsigned integers, addition, multiplication, and parentheses:
//
//	expr   = term '+' expr | term
//	term   = factor '*' term | factor
//	factor = '(' expr ')' | digits
//
// Multiplication binds tighter than addition because term absorbs every
// multiplication chain before expr ever looks for a '+'. Each rule only
// recurses after consuming at least one byte, so recursion is bounded by the
// length of the input.
package arith

import (
	"github.com/zostay/combo/match"
	"github.com/zostay/combo/parser"
	"github.com/zostay/combo/token"
)

var (
	TExpr   = token.NextTag()
	TTerm   = token.NextTag()
	TFactor = token.NextTag()
)

var (
	Plus       = match.Char('+')
	Times      = match.Char('*')
	OpenParen  = match.Char('(')
	CloseParen = match.Char(')')
)

// Option configures a Grammar.
type Option func(*Grammar)

// WithTracer reports every attempt of every rule to tr.
func WithTracer(tr parser.Tracer) Option {
	return func(g *Grammar) {
		g.tracer = tr
	}
}

// Grammar holds the three mutually recursive rules. It is immutable once
// built and may be shared between goroutines.
type Grammar struct {
	tracer parser.Tracer

	expr   parser.Matcher
	term   parser.Matcher
	factor parser.Matcher
}

// New builds a Grammar.
func New(opts ...Option) *Grammar {
	g := &Grammar{}
	for _, opt := range opts {
		opt(g)
	}

	// bound before the rules exist so the rules can refer to one another
	expr := parser.MatcherFunc(g.Expr)
	term := parser.MatcherFunc(g.Term)
	factor := parser.MatcherFunc(g.Factor)

	g.factor = parser.Trace("factor", match.Choice(TFactor,
		match.Group(OpenParen, expr, CloseParen),
		match.Single(match.Digits),
	), g.tracer)

	g.term = parser.Trace("term", match.Choice(TTerm,
		match.Group(factor, Times, term),
		match.Single(factor),
	), g.tracer)

	g.expr = parser.Trace("expr", match.Choice(TExpr,
		match.Group(term, Plus, expr),
		match.Single(term),
	), g.tracer)

	return g
}

// Expr matches a sum of terms.
func (g *Grammar) Expr(in string) parser.Result {
	return g.expr.Match(in)
}

// Term matches a product of factors.
func (g *Grammar) Term(in string) parser.Result {
	return g.term.Match(in)
}

// Factor matches a parenthesized expression or an integer.
func (g *Grammar) Factor(in string) parser.Result {
	return g.factor.Match(in)
}

// Rule returns the rule with the given name: "expr", "term", or "factor".
func (g *Grammar) Rule(name string) (parser.Matcher, bool) {
	switch name {
	case "expr":
		return parser.MatcherFunc(g.Expr), true
	case "term":
		return parser.MatcherFunc(g.Term), true
	case "factor":
		return parser.MatcherFunc(g.Factor), true
	}
	return nil, false
}

var std = New()

// Expr matches a sum of terms using the untraced grammar.
func Expr(in string) parser.Result {
	return std.Expr(in)
}

// Term matches a product of factors using the untraced grammar.
func Term(in string) parser.Result {
	return std.Term(in)
}

// Factor matches a parenthesized expression or an integer using the untraced
// grammar.
func Factor(in string) parser.Result {
	return std.Factor(in)
}
