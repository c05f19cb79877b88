package lexer

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Literals
	WORD   // any run of non-whitespace that is not a keyword or number
	NUMBER // 123

	// Keywords
	INSERT
	SELECT
)

var keywords = map[string]TokenType{
	"INSERT": INSERT,
	"SELECT": SELECT,
}

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	case NUMBER:
		return "NUMBER"
	case INSERT:
		return "INSERT"
	case SELECT:
		return "SELECT"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

type Token struct {
	Type    TokenType
	Literal string
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q)", t.Type, t.Literal)
}

// Lexer splits a single shell line into whitespace separated tokens
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.position >= len(l.input) {
		return Token{Type: EOF}
	}

	tok := Token{Literal: l.readWord()}
	switch {
	case isNumber(tok.Literal):
		tok.Type = NUMBER
	default:
		tok.Type = LookupIdent(tok.Literal)
	}
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) && isSpace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readWord() string {
	position := l.position
	for l.position < len(l.input) && !isSpace(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return WORD
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isNumber(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// Tokenize splits the whole input at once, without the trailing EOF
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
