// Package token defines the operator tokens recognized when lexing source code.
package token

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Token types. The language has exactly eight operators; every other byte in
// the input is treated as a comment and never becomes a token.
const (
	GT       Type = ">"
	LT       Type = "<"
	PLUS     Type = "+"
	MINUS    Type = "-"
	PERIOD   Type = "."
	COMMA    Type = ","
	LBRACKET Type = "["
	RBRACKET Type = "]"
	EOF      Type = "EOF"
)

// Lookup returns the token type for the given byte and whether the byte is a
// recognized operator.
func Lookup(ch byte) (Type, bool) {
	switch ch {
	case '>':
		return GT, true
	case '<':
		return LT, true
	case '+':
		return PLUS, true
	case '-':
		return MINUS, true
	case '.':
		return PERIOD, true
	case ',':
		return COMMA, true
	case '[':
		return LBRACKET, true
	case ']':
		return RBRACKET, true
	default:
		return "", false
	}
}
