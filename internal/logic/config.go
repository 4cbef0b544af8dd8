package logic

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Tokens holds the canonical symbol of each operator class. Every alias the
// normalizer recognizes is rewritten to one of these symbols.
type Tokens struct {
	And    string `toml:"and"`
	Or     string `toml:"or"`
	Not    string `toml:"not"`
	Xor    string `toml:"xor"`
	LParen string `toml:"left_paren"`
	RParen string `toml:"right_paren"`
}

// DefaultTokens returns the symbols used when no configuration is given.
func DefaultTokens() Tokens {
	return Tokens{And: "*", Or: "+", Not: "~", Xor: "^", LParen: "(", RParen: ")"}
}

type symbol struct {
	key string
	val string
}

func (t Tokens) symbols() []symbol {
	return []symbol{
		{"and", t.And}, {"or", t.Or}, {"not", t.Not},
		{"xor", t.Xor}, {"left_paren", t.LParen}, {"right_paren", t.RParen},
	}
}

// Validate checks that every symbol is a single distinct rune that the
// tokenizer splits on its own: no letters, digits, spaces or underscores.
func (t Tokens) Validate() error {
	seen := make(map[string]string)
	for _, s := range t.symbols() {
		if utf8.RuneCountInString(s.val) != 1 {
			return fmt.Errorf("%w: %s symbol %q must be a single character", ErrConfig, s.key, s.val)
		}
		r, _ := utf8.DecodeRuneInString(s.val)
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' || r == '\'' {
			return fmt.Errorf("%w: %s symbol %q is not an operator character", ErrConfig, s.key, s.val)
		}
		if other, ok := seen[s.val]; ok {
			return fmt.Errorf("%w: %s and %s share symbol %q", ErrConfig, other, s.key, s.val)
		}
		seen[s.val] = s.key
	}
	return nil
}

// LoadTokens reads a TOML file of operator symbols. Keys that are absent
// keep their default value.
//
//	and = "&"
//	or = "|"
//	left_paren = "{"
func LoadTokens(path string) (Tokens, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tokens{}, err
	}
	defer f.Close()

	var file Tokens
	meta, err := toml.NewDecoder(f).Decode(&file)
	if err != nil {
		return Tokens{}, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Tokens{}, fmt.Errorf("%s: %w: unknown key %q", path, ErrConfig, undecoded[0].String())
	}
	t := mergeTokens(DefaultTokens(), file, meta)
	if err := t.Validate(); err != nil {
		return Tokens{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func mergeTokens(base, file Tokens, meta toml.MetaData) Tokens {
	if meta.IsDefined("and") {
		base.And = file.And
	}
	if meta.IsDefined("or") {
		base.Or = file.Or
	}
	if meta.IsDefined("not") {
		base.Not = file.Not
	}
	if meta.IsDefined("xor") {
		base.Xor = file.Xor
	}
	if meta.IsDefined("left_paren") {
		base.LParen = file.LParen
	}
	if meta.IsDefined("right_paren") {
		base.RParen = file.RParen
	}
	return base
}

type options struct {
	tokens Tokens
	strict bool
}

// Option configures a Parser.
type Option func(*options)

// WithTokens selects the canonical operator symbols.
func WithTokens(t Tokens) Option {
	return func(o *options) { o.tokens = t }
}

// Strict makes the tokenizer reject characters it would otherwise drop.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

func makeOptions(opts []Option) options {
	o := options{tokens: DefaultTokens()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
