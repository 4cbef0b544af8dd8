package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

type TokenKind int

const (
	TokVar TokenKind = iota
	TokTrue
	TokFalse
	TokNot
	TokAnd
	TokXor
	TokOr
	TokLParen
	TokRParen
	TokOther
)

// Token is one atomic unit of a normalized expression. Text is the
// configured symbol for operators, the letter for variables and "1"/"0" for
// constants.
type Token struct {
	Kind TokenKind
	Text string
}

const postfixNot = '\''

type alias struct {
	text   string
	symbol string
}

// aliasTable lists every surface form and the canonical symbol it becomes,
// longest forms first so that "&&" is not read as two "&".
func aliasTable(t Tokens) []alias {
	groups := []struct {
		symbol string
		forms  []string
	}{
		{t.And, []string{"&", "&&", "*", ".", "AND", "×", "∧", "⋂", "⋅"}},
		{t.Or, []string{"+", "OR", "|", "||", "∨", "⋃"}},
		{t.Not, []string{"!", "-", "NOT", "~", "¬"}},
		{t.Xor, []string{"XOR", "⊕", "⊻", "^"}},
		{t.LParen, []string{"(", "[", "{"}},
		{t.RParen, []string{")", "]", "}"}},
		{"1", []string{"TRUE", "1"}},
		{"0", []string{"FALSE", "0"}},
	}
	var table []alias
	for _, g := range groups {
		for _, f := range g.forms {
			table = append(table, alias{text: f, symbol: g.symbol})
		}
	}
	slices.SortStableFunc(table, func(a, b alias) int {
		return utf8.RuneCountInString(b.text) - utf8.RuneCountInString(a.text)
	})
	return table
}

// Tokenize normalizes expr and splits it into tokens. It also returns the
// distinct variable names in order of first appearance.
func Tokenize(expr string, opts ...Option) ([]Token, []string, error) {
	o := makeOptions(opts)
	if err := o.tokens.Validate(); err != nil {
		return nil, nil, err
	}
	s := rewritePostfixNot(expr, o.tokens.Not)
	s = replaceAliases(s, aliasTable(o.tokens))
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	var raw []Token
	for _, r := range s {
		switch {
		case isLetter(r):
			raw = append(raw, Token{Kind: TokVar, Text: string(r)})
		case r == '1':
			raw = append(raw, Token{Kind: TokTrue, Text: "1"})
		case r == '0':
			raw = append(raw, Token{Kind: TokFalse, Text: "0"})
		case isWordRune(r):
			if o.strict {
				return nil, nil, parseErrorf(expr, ErrIllegalRune, "%q", r)
			}
		default:
			raw = append(raw, Token{Kind: o.tokens.kindOf(string(r)), Text: string(r)})
		}
	}

	var names []string
	for _, tok := range raw {
		if tok.Kind == TokVar && !slices.Contains(names, tok.Text) {
			names = append(names, tok.Text)
		}
	}
	return insertImplicitAnd(raw, o.tokens.And), names, nil
}

// rewritePostfixNot turns X' into ~X for single-letter variables.
func rewritePostfixNot(s, not string) string {
	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		if isLetter(runes[i]) && i+1 < len(runes) && runes[i+1] == postfixNot {
			b.WriteString(not)
			b.WriteRune(runes[i])
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// replaceAliases scans s once, replacing the first alias that matches
// (case-insensitively) at each position. Replaced text is not rescanned.
func replaceAliases(s string, table []alias) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		matched := false
		for _, a := range table {
			if n := len(a.text); i+n <= len(s) && strings.EqualFold(s[i:i+n], a.text) {
				b.WriteString(a.symbol)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
		}
	}
	return b.String()
}

// insertImplicitAnd reads juxtaposition as conjunction: an operand end (a
// variable or ")") directly followed by an operand start (a variable, "("
// or NOT) gets an AND between them.
func insertImplicitAnd(tokens []Token, and string) []Token {
	out := make([]Token, 0, len(tokens))
	pending := false
	for _, tok := range tokens {
		if pending && (tok.Kind == TokVar || tok.Kind == TokLParen || tok.Kind == TokNot) {
			out = append(out, Token{Kind: TokAnd, Text: and})
		}
		out = append(out, tok)
		pending = tok.Kind == TokVar || tok.Kind == TokRParen
	}
	return out
}

func (t Tokens) kindOf(s string) TokenKind {
	switch s {
	case t.And:
		return TokAnd
	case t.Or:
		return TokOr
	case t.Not:
		return TokNot
	case t.Xor:
		return TokXor
	case t.LParen:
		return TokLParen
	case t.RParen:
		return TokRParen
	}
	return TokOther
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// isWordRune reports the remaining characters of the ASCII word class:
// digits other than 0 and 1, and the underscore.
func isWordRune(r rune) bool {
	return (r >= '2' && r <= '9') || r == '_'
}

// Texts returns the text of each token.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}
