// Package lexer filters raw source text into the stream of recognized
// operator tokens. Any byte that is not one of the eight operators is
// treated as a comment and silently dropped, so lexing cannot fail.
package lexer

import (
	"github.com/deepnoodle-ai/brack/internal/token"
)

// Lexer is used to tokenize an input string. Create one with New and then
// call Next repeatedly until an EOF token is returned.
type Lexer struct {
	// input being lexed
	input string

	// byte offset of the next unread byte
	offset int

	// 0-indexed line number of the next unread byte
	line int

	// byte offset of the start of the current line
	lineStart int

	// optional filename recorded in token positions
	filename string
}

// New creates a Lexer for the given input string.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// SetFilename sets the filename recorded in token positions.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Next returns the next operator token from the input. Bytes that are not
// operators are skipped. When the input is exhausted an EOF token is
// returned, and every subsequent call returns EOF again.
func (l *Lexer) Next() token.Token {
	for l.offset < len(l.input) {
		ch := l.input[l.offset]
		pos := l.position()
		l.advance(ch)
		if typ, ok := token.Lookup(ch); ok {
			return token.Token{
				Type:          typ,
				Literal:       string(ch),
				StartPosition: pos,
				EndPosition:   pos.Advance(1),
			}
		}
	}
	pos := l.position()
	return token.Token{Type: token.EOF, StartPosition: pos, EndPosition: pos}
}

// Tokenize consumes the remaining input and returns all operator tokens,
// excluding the trailing EOF token.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for tok := l.Next(); tok.Type != token.EOF; tok = l.Next() {
		tokens = append(tokens, tok)
	}
	return tokens
}

func (l *Lexer) position() token.Position {
	return token.Position{
		Char:      l.offset,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.offset - l.lineStart,
		File:      l.filename,
	}
}

func (l *Lexer) advance(ch byte) {
	l.offset++
	if ch == '\n' {
		l.line++
		l.lineStart = l.offset
	}
}
