package parser

import (
	"strings"
	"unicode"
)

type Tokenizer struct {
	source []rune
	offset int
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		source: []rune(source),
	}
}

func (t *Tokenizer) peekRune() (rune, bool) {
	if t.offset >= len(t.source) {
		return 0, false
	}
	return t.source[t.offset], true
}

func (t *Tokenizer) readRune() (rune, bool) {
	r, ok := t.peekRune()
	if ok {
		t.offset++
	}
	return r, ok
}

func (t *Tokenizer) Tokens() []Token {
	var ret []Token
	for {
		token := t.next()
		ret = append(ret, token)
		if token.Kind == TokenEOF {
			return ret
		}
	}
}

func (t *Tokenizer) next() Token {
	t.skipWhitespace()
	column := t.offset + 1

	r, ok := t.readRune()
	if !ok {
		return Token{Kind: TokenEOF, Column: column}
	}

	switch {
	case r == '"':
		return t.parseQuoted('"', TokenString, column)
	case r == '\'':
		return t.parseQuoted('\'', TokenChar, column)
	case r >= '0' && r <= '9':
		t.offset--
		return t.parseNumber(column)
	case r == '_' || isLetter(r):
		t.offset--
		return t.parseIdentifier(column)
	case strings.ContainsRune("()[]=;+-*/", r):
		return Token{
			Kind:   TokenSymbol,
			Text:   string(r),
			Column: column,
		}
	}

	return Token{Kind: TokenInvalid, Text: string(r), Column: column}
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, ok := t.peekRune()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		t.offset++
	}
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (t *Tokenizer) parseIdentifier(column int) Token {
	var sb strings.Builder
	for {
		r, ok := t.peekRune()
		if !ok || !(r == '_' || isLetter(r) || isDigit(r)) {
			break
		}
		sb.WriteRune(r)
		t.offset++
	}
	return Token{
		Kind:   TokenIdentifier,
		Text:   sb.String(),
		Column: column,
	}
}

func (t *Tokenizer) parseNumber(column int) Token {
	var sb strings.Builder
	kind := TokenInt
	for {
		r, ok := t.peekRune()
		if !ok {
			break
		}
		if isDigit(r) {
			sb.WriteRune(r)
		} else if r == '.' && kind == TokenInt {
			kind = TokenDouble
			sb.WriteRune(r)
		} else {
			break
		}
		t.offset++
	}
	return Token{
		Kind:   kind,
		Text:   sb.String(),
		Column: column,
	}
}

func (t *Tokenizer) parseQuoted(quote rune, kind TokenKind, column int) Token {
	var sb strings.Builder
	for {
		r, ok := t.readRune()
		if !ok {
			return Token{Kind: TokenUnterminated, Text: sb.String(), Column: column}
		}
		if r == quote {
			break
		}
		sb.WriteRune(r)
	}
	if kind == TokenChar && len([]rune(sb.String())) != 1 {
		return Token{Kind: TokenInvalid, Text: "'" + sb.String() + "'", Column: column}
	}
	return Token{
		Kind:   kind,
		Text:   sb.String(),
		Column: column,
	}
}
