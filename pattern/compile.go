package pattern

import (
	"fmt"
	"strings"
	"unicode"
)

// Compile parses one template line into an ordered token list.
//
// All whitespace is stripped first, so visual column alignment in a
// rule file carries no meaning: visually separated fields concatenate
// into one token stream. The line is then scanned left to right; text
// outside %...% spans becomes literal tokens, and each span becomes a
// directive token whose arguments are validated here rather than at
// expansion time.
func Compile(line string) ([]Token, error) {
	line = stripSpace(line)

	var tokens []Token
	for len(line) > 0 {
		open := strings.IndexByte(line, '%')
		if open < 0 {
			tokens = append(tokens, Token{Kind: KindLiteral, Args: []string{line}})
			break
		}
		if open > 0 {
			tokens = append(tokens, Token{Kind: KindLiteral, Args: []string{line[:open]}})
		}
		end := strings.IndexByte(line[open+1:], '%')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated directive in %q", ErrSyntax, line)
		}
		span := line[open+1 : open+1+end]
		line = line[open+1+end+1:]

		tok, err := compileDirective(span)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// compileDirective parses the inside of one %...% span: a single
// directive letter followed by its comma-separated arguments.
func compileDirective(span string) (Token, error) {
	if span == "" {
		return Token{}, fmt.Errorf("%w: empty directive", ErrSyntax)
	}

	var args []string
	if rest := span[1:]; rest != "" {
		args = strings.Split(rest, ",")
	}

	var kind Kind
	switch span[0] {
	case 'N':
		if len(args) != 2 {
			return Token{}, fmt.Errorf("%w: %%N%% takes 2 arguments, got %d", ErrArgCount, len(args))
		}
		kind = KindNumericRange
	case 'D':
		if len(args) > 2 {
			return Token{}, fmt.Errorf("%w: %%D%% takes at most 2 arguments, got %d", ErrArgCount, len(args))
		}
		kind = KindDomainParts
	case 'L':
		kind = KindList
	case 'O':
		if len(args) != 1 {
			return Token{}, fmt.Errorf("%w: %%O%% takes 1 argument, got %d", ErrArgCount, len(args))
		}
		kind = KindOptional
	default:
		return Token{}, fmt.Errorf("%w: unknown directive %%%c%%", ErrSyntax, span[0])
	}
	return Token{Kind: kind, Args: args}, nil
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
