package pattern

import (
	"fmt"
	"strconv"
)

// Sink receives one fully-expanded candidate. Returning an error stops
// the expansion and propagates out of Expand.
type Sink func(candidate string) error

// Expand evaluates a compiled token list against the target domain and
// invokes sink exactly once per candidate. The traversal is depth
// first: the leftmost token is the outermost loop and varies slowest,
// the rightmost is the innermost and varies fastest, yielding the
// cartesian product of all directive expansions with literal tokens as
// pass-through stages.
//
// Sibling branches share no mutable state beyond the read-only domain.
func Expand(tokens []Token, domain *Domain, sink Sink) error {
	return expand(tokens, domain, "", sink)
}

func expand(tokens []Token, domain *Domain, prefix string, sink Sink) error {
	if len(tokens) == 0 {
		return sink(prefix)
	}
	tok, rest := tokens[0], tokens[1:]
	next := func(suffix string) error {
		return expand(rest, domain, prefix+suffix, sink)
	}

	switch tok.Kind {
	case KindLiteral:
		return next(tok.Args[0])
	case KindNumericRange:
		return expandRange(tok.Args[0], tok.Args[1], next)
	case KindDomainParts:
		return expandDomain(tok.Args, domain, next)
	case KindList:
		for _, item := range tok.Args {
			if err := next(item); err != nil {
				return err
			}
		}
		return nil
	case KindOptional:
		if err := next(""); err != nil {
			return err
		}
		return next(tok.Args[0])
	default:
		return fmt.Errorf("%w: unexpected token kind %d", ErrSyntax, tok.Kind)
	}
}

// expandRange walks an inclusive range. Two single-letter endpoints
// iterate the alphabet between them; anything else is an integer
// range. A numeric first endpoint with a leading zero fixes the
// zero-padding width to its literal length, even when later values
// would need more digits. An empty range (a > b) produces nothing and
// is not an error.
func expandRange(a, b string, next func(string) error) error {
	if len(a) == 1 && len(b) == 1 && isLetter(a[0]) && isLetter(b[0]) {
		for c := a[0]; c <= b[0]; c++ {
			if err := next(string(c)); err != nil {
				return err
			}
		}
		return nil
	}

	lo, err := strconv.Atoi(a)
	if err != nil {
		return fmt.Errorf("%w: bad range start %q", ErrSyntax, a)
	}
	hi, err := strconv.Atoi(b)
	if err != nil {
		return fmt.Errorf("%w: bad range end %q", ErrSyntax, b)
	}

	width := 0
	if a[0] == '0' && len(a) > 1 {
		width = len(a)
	}

	for i := lo; i <= hi; i++ {
		var s string
		if width > 0 {
			s = fmt.Sprintf("%0*d", width, i)
		} else {
			s = strconv.Itoa(i)
		}
		if err := next(s); err != nil {
			return err
		}
	}
	return nil
}

// expandDomain emits the whole domain, one label, or a label slice.
func expandDomain(args []string, domain *Domain, next func(string) error) error {
	switch len(args) {
	case 0:
		return next(domain.Name())
	case 1:
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: bad label index %q", ErrSyntax, args[0])
		}
		return next(domain.Label(i))
	default:
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: bad label index %q", ErrSyntax, args[0])
		}
		j, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: bad label index %q", ErrSyntax, args[1])
		}
		return next(domain.Slice(i, j))
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
