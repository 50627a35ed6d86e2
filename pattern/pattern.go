// Package pattern implements the selector template grammar used to
// generate DKIM selector candidates.
//
// A template line is scanned for %X...% spans, where X identifies a
// directive and the remainder is a comma-separated argument list. Text
// outside spans is emitted verbatim. The supported directives are:
//
//   - %Na,b%  numeric (or single-letter) range, inclusive
//   - %D%     domain labels: whole domain, one label, or a label slice
//   - %La,b%  literal alternatives, tried in order
//   - %Os%    optional suffix: expands both with and without s
//
// Compiling a line yields an ordered token list; Expand walks it as
// nested loops, leftmost token outermost, invoking a sink once per
// fully-expanded candidate:
//
//	tokens, err := pattern.Compile("selector%N1,9%")
//	err = pattern.Expand(tokens, domain, func(candidate string) error {
//	    ...
//	})
package pattern

import "errors"

// Kind identifies a directive token.
type Kind int

const (
	// KindLiteral is verbatim text between directive spans.
	KindLiteral Kind = iota

	// KindNumericRange is %Na,b%: an inclusive integer or
	// single-letter range.
	KindNumericRange

	// KindDomainParts is %D%, %Di% or %Di,j%: labels of the target
	// domain.
	KindDomainParts

	// KindList is %La,b,...%: literal alternatives.
	KindList

	// KindOptional is %Os%: expands to nothing and to s.
	KindOptional
)

// Token is one compiled element of a template line. For KindLiteral the
// text is carried in Args[0]; for directives Args holds the raw
// comma-separated arguments in source order. Tokens are immutable once
// compiled.
type Token struct {
	Kind Kind
	Args []string
}

var (
	// ErrSyntax indicates a malformed template line, such as an
	// unterminated %...% span or an unknown directive letter.
	ErrSyntax = errors.New("pattern: syntax error")

	// ErrArgCount indicates a directive with the wrong number of
	// arguments. This is a configuration error: the rule corpus is
	// corrupt and the whole run should abort.
	ErrArgCount = errors.New("pattern: wrong argument count")
)
