package ingest

import (
	"fmt"
	"strings"
	"unicode"
)

// ---------------------------------------------------------------------------
// Token types
// ---------------------------------------------------------------------------

type tokenType int

const (
	tokIdent  tokenType = iota // bare or backtick-quoted identifier
	tokString                  // single- or double-quoted literal
	tokNumber
	tokLParen
	tokRParen
	tokComma
	tokDot
	tokEquals
	tokSemicolon
)

type token struct {
	typ    tokenType
	value  string // unquoted text
	quoted bool   // identifier was backtick-quoted (never a keyword)
	pos    int
}

// keywordIs reports whether the token is the given bare keyword,
// case-insensitively. Quoted identifiers never match.
func (t token) keywordIs(kw string) bool {
	return t.typ == tokIdent && !t.quoted && strings.EqualFold(t.value, kw)
}

// ---------------------------------------------------------------------------
// Lexer
// ---------------------------------------------------------------------------

// tokenizeDDL splits a SQL DDL statement into tokens. Line comments (-- and #)
// and block comments are skipped.
func tokenizeDDL(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0

	for i < len(runes) {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}

		case r == '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}

		case r == '/' && i+1 < len(runes) && runes[i+1] == '*':
			j := i + 2
			for j+1 < len(runes) && !(runes[j] == '*' && runes[j+1] == '/') {
				j++
			}
			if j+1 >= len(runes) {
				return nil, fmt.Errorf("unterminated block comment at position %d", i)
			}
			i = j + 2

		case r == '`':
			value, next, err := scanQuoted(runes, i, '`')
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{typ: tokIdent, value: value, quoted: true, pos: i})
			i = next

		case r == '\'' || r == '"':
			value, next, err := scanQuoted(runes, i, r)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{typ: tokString, value: value, pos: i})
			i = next

		case r == '(':
			tokens = append(tokens, token{typ: tokLParen, value: "(", pos: i})
			i++
		case r == ')':
			tokens = append(tokens, token{typ: tokRParen, value: ")", pos: i})
			i++
		case r == ',':
			tokens = append(tokens, token{typ: tokComma, value: ",", pos: i})
			i++
		case r == '.':
			tokens = append(tokens, token{typ: tokDot, value: ".", pos: i})
			i++
		case r == '=':
			tokens = append(tokens, token{typ: tokEquals, value: "=", pos: i})
			i++
		case r == ';':
			tokens = append(tokens, token{typ: tokSemicolon, value: ";", pos: i})
			i++

		case unicode.IsDigit(r) || (r == '-' && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			start := i
			i++
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			tokens = append(tokens, token{typ: tokNumber, value: string(runes[start:i]), pos: start})

		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_' || runes[i] == '$') {
				i++
			}
			tokens = append(tokens, token{typ: tokIdent, value: string(runes[start:i]), pos: start})

		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", r, i)
		}
	}
	return tokens, nil
}

// scanQuoted reads a quoted run starting at the opening quote and returns the
// unquoted value and the index just past the closing quote. A doubled quote
// escapes itself; backslash escapes the next character inside strings.
func scanQuoted(runes []rune, start int, quote rune) (string, int, error) {
	var b strings.Builder
	i := start + 1
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == quote && i+1 < len(runes) && runes[i+1] == quote:
			b.WriteRune(quote)
			i += 2
		case r == quote:
			return b.String(), i + 1, nil
		case r == '\\' && quote != '`' && i+1 < len(runes):
			b.WriteRune(runes[i+1])
			i += 2
		default:
			b.WriteRune(r)
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated %q starting at position %d", quote, start)
}
