package parser

import (
	"errors"
	"fmt"

	"github.com/deepnoodle-ai/brack/internal/token"
)

// Sentinel errors for the two ways a program can be structurally malformed.
// Use errors.Is to test for them on errors returned by Parse.
var (
	// ErrUnmatchedOpen indicates a "[" with no matching "]".
	ErrUnmatchedOpen = errors.New("unmatched '['")

	// ErrUnmatchedClose indicates a "]" with no matching "[".
	ErrUnmatchedClose = errors.New("unmatched ']'")
)

// ErrorOpts is a struct that holds a variety of error data. All fields are
// optional, although one of Cause or Message is recommended.
type ErrorOpts struct {
	Message       string
	Cause         error
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
	Depth         int
}

// NewParserError returns a new BaseParserError populated with the given
// error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		message:       opts.Message,
		cause:         opts.Cause,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
		depth:         opts.Depth,
	}
}

// ParserError is an interface that all parser errors implement.
type ParserError interface {
	error
	Message() string
	Cause() error
	File() string
	StartPosition() token.Position
	EndPosition() token.Position
	SourceCode() string
	Depth() int
}

// BaseParserError is the simplest implementation of ParserError.
type BaseParserError struct {
	// The error message
	message string
	// The wrapped error
	cause error
	// File where the error occurred
	file string
	// Start position of the error in the input string
	startPosition token.Position
	// End position of the error in the input string
	endPosition token.Position
	// Relevant line of source code text
	sourceCode string
	// Bracket nesting depth at the point of the error
	depth int
}

func (e *BaseParserError) Error() string {
	var msg string
	if e.cause != nil {
		msg = e.cause.Error()
	}
	if e.message != "" {
		if msg != "" {
			msg = fmt.Sprintf("%s: %s", msg, e.message)
		} else {
			msg = e.message
		}
	}
	where := e.file
	if where == "" {
		where = "unknown"
	}
	return fmt.Sprintf("parse error: %s\n\nlocation: %s:%d:%d (line %d, column %d)",
		msg, where,
		e.startPosition.LineNumber(), e.startPosition.ColumnNumber(),
		e.startPosition.LineNumber(), e.startPosition.ColumnNumber())
}

func (e *BaseParserError) Unwrap() error { return e.cause }

func (e *BaseParserError) Message() string { return e.message }

func (e *BaseParserError) Cause() error { return e.cause }

func (e *BaseParserError) File() string { return e.file }

func (e *BaseParserError) StartPosition() token.Position { return e.startPosition }

func (e *BaseParserError) EndPosition() token.Position { return e.endPosition }

func (e *BaseParserError) SourceCode() string { return e.sourceCode }

func (e *BaseParserError) Depth() int { return e.depth }
