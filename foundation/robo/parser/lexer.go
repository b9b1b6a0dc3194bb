// File: lexer.go
// Title: RoboScript Lexical Analyzer (Tokenizer)
// Description: Lazily splits RoboScript source into tokens at whitespace and
//              at the delimiter characters, tracking positions for error
//              reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-14 v0.2.0: Whitespace/delimiter tokenizer with lookahead buffer

package parser

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota

	TokenWord   // move, while, fuelLeft, anything else
	TokenNumber // -?[0-9]+

	// Delimiters
	TokenLeftBrace  // {
	TokenRightBrace // }
	TokenLeftParen  // (
	TokenRightParen // )
	TokenComma      // ,
	TokenSemicolon  // ;
)

var numberPattern = regexp.MustCompile(`^-?[0-9]+$`)

var delimiters = map[rune]TokenType{
	'{': TokenLeftBrace,
	'}': TokenRightBrace,
	'(': TokenLeftParen,
	')': TokenRightParen,
	',': TokenComma,
	';': TokenSemicolon,
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenWord:
		return "WORD"
	case TokenNumber:
		return "NUMBER"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenComma:
		return "COMMA"
	case TokenSemicolon:
		return "SEMICOLON"
	default:
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type   TokenType
	Text   string
	Offset int // Byte offset in input
	Line   int // Line number (1-based)
	Column int // Column number in runes (1-based)
	Index  int // Ordinal of the token in the input (0-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Text)
}

// Lexer produces tokens on demand. It never fails: any run of
// non-whitespace, non-delimiter characters is a word token.
type Lexer struct {
	input  string
	offset int
	line   int
	column int
	index  int

	// scanned but not yet consumed
	buf []Token
}

// NewLexer creates a lexer over input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// HasNext reports whether another token is available
func (l *Lexer) HasNext() bool {
	return l.fill(1)
}

// Peek returns the next token without consuming it. At the end of input it
// returns an EOF token positioned after the last character, and false.
func (l *Lexer) Peek() (Token, bool) {
	if !l.fill(1) {
		return l.eof(), false
	}
	return l.buf[0], true
}

// Next consumes and returns the next token
func (l *Lexer) Next() (Token, bool) {
	if !l.fill(1) {
		return l.eof(), false
	}
	tok := l.buf[0]
	l.buf = l.buf[1:]
	return tok, true
}

// Remaining returns the text of up to n upcoming tokens without consuming
// them.
func (l *Lexer) Remaining(n int) []string {
	l.fill(n)
	if n > len(l.buf) {
		n = len(l.buf)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = l.buf[i].Text
	}
	return out
}

func (l *Lexer) fill(n int) bool {
	for len(l.buf) < n {
		tok, ok := l.scan()
		if !ok {
			return false
		}
		l.buf = append(l.buf, tok)
	}
	return true
}

func (l *Lexer) eof() Token {
	return Token{Type: TokenEOF, Offset: l.offset, Line: l.line, Column: l.column, Index: l.index}
}

func (l *Lexer) scan() (Token, bool) {
	l.skipWhitespace()
	if l.offset >= len(l.input) {
		return Token{}, false
	}

	tok := Token{Offset: l.offset, Line: l.line, Column: l.column, Index: l.index}
	r, size := utf8.DecodeRuneInString(l.input[l.offset:])

	if typ, ok := delimiters[r]; ok {
		l.advance(r, size)
		tok.Type = typ
		tok.Text = string(r)
	} else {
		for l.offset < len(l.input) {
			r, size = utf8.DecodeRuneInString(l.input[l.offset:])
			if _, delim := delimiters[r]; delim || unicode.IsSpace(r) {
				break
			}
			l.advance(r, size)
		}
		tok.Text = l.input[tok.Offset:l.offset]
		tok.Type = TokenWord
		if numberPattern.MatchString(tok.Text) {
			tok.Type = TokenNumber
		}
	}

	l.index++
	return tok, true
}

func (l *Lexer) skipWhitespace() {
	for l.offset < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.offset:])
		if !unicode.IsSpace(r) {
			return
		}
		l.advance(r, size)
	}
}

func (l *Lexer) advance(r rune, size int) {
	l.offset += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// Tokenize returns every token of input
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
