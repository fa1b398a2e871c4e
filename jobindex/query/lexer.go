package query

import (
	"fmt"
	"strings"
	"unicode"
)

// Token represents a lexical token
type Token struct {
	Kind  TokenKind
	Value string
	// Pos is the rune offset of the token in the input.
	Pos int
}

// TokenKind is the type of token
type TokenKind int

const (
	TokWord TokenKind = iota
	TokString
	TokColon
	TokEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokWord:
		return "Word"
	case TokString:
		return "String"
	case TokColon:
		return "Colon"
	case TokEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Lexer tokenizes a filter string
type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Lex tokenizes the entire input
func Lex(input string) ([]Token, error) {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}

	return tokens, nil
}

// Next returns the next token
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Kind: TokEOF, Pos: l.pos}, nil
	}

	switch ch := l.input[l.pos]; ch {
	case ':':
		l.pos++
		return Token{Kind: TokColon, Pos: l.pos - 1}, nil
	case '"':
		return l.scanString()
	}
	return l.scanWord(), nil
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) scanString() (Token, error) {
	start := l.pos
	l.pos++ // consume opening quote
	var sb strings.Builder

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '"' {
			l.pos++ // consume closing quote
			return Token{Kind: TokString, Value: sb.String(), Pos: start}, nil
		}
		if ch == '\\' && l.pos+1 < len(l.input) {
			l.pos++
			sb.WriteRune(l.input[l.pos])
			l.pos++
			continue
		}
		sb.WriteRune(ch)
		l.pos++
	}

	return Token{}, fmt.Errorf("unterminated string at %d", start)
}

func (l *Lexer) scanWord() Token {
	start := l.pos
	for l.pos < len(l.input) && isWordChar(l.input[l.pos]) {
		l.pos++
	}
	return Token{Kind: TokWord, Value: string(l.input[start:l.pos]), Pos: start}
}

func isWordChar(ch rune) bool {
	return !unicode.IsSpace(ch) && ch != ':' && ch != '"'
}
