package shell

import (
	"unicode"
)

// DefaultTokenizer splits a line on runs of whitespace. There is no quoting
// or escaping support: every maximal run of non-blank characters is one
// token. NUL bytes act as separators too, so no token ever carries an
// embedded terminator.
type DefaultTokenizer struct{}

func NewDefaultTokenizer() *DefaultTokenizer {
	return &DefaultTokenizer{}
}

func (t *DefaultTokenizer) Tokenize(line string) []string {
	tokens := []string{}

	start := -1
	for i, ch := range line {
		if unicode.IsSpace(ch) || ch == 0 {
			if start >= 0 {
				tokens = append(tokens, line[start:i])
				start = -1
			}
			continue
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		tokens = append(tokens, line[start:])
	}

	return tokens
}
