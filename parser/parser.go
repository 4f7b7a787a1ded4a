// Package parser is used to generate the abstract syntax tree (AST) for a
// program.
//
// A parser is created by calling New() with a lexer as input. The parser
// should then be used only once, by calling parser.Parse() to produce the AST.
package parser

import (
	"context"

	"github.com/deepnoodle-ai/brack/ast"
	"github.com/deepnoodle-ai/brack/internal/lexer"
	"github.com/deepnoodle-ai/brack/internal/token"
)

// DefaultMaxDepth is the default maximum bracket nesting depth for parsing.
// This prevents stack overflow on pathologically nested input.
const DefaultMaxDepth = 1000

// Parse the provided input as source code and return the AST. This is a
// shorthand way to create a Lexer and Parser and then call Parse on that.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	// Extract filename from options before creating the parser, so that the
	// lexer records proper location context on every token.
	var filename string
	for _, opt := range options {
		var probe Parser
		opt(&probe)
		if probe.filename != "" {
			filename = probe.filename
			break
		}
	}

	l := lexer.New(input)
	if filename != "" {
		l.SetFilename(filename)
	}

	p := New(l, options...)
	return p.Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name used in error messages and positions.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum bracket nesting depth for the parser.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parser transforms the lexer's token stream into a syntax tree.
type Parser struct {
	// l is our lexer
	l *lexer.Lexer

	// curToken holds the current token from the lexer
	curToken token.Token

	// source filename
	filename string

	// maximum bracket nesting depth
	maxDepth int

	// openBrackets holds the positions of currently open "[" tokens,
	// innermost last. Used for error context.
	openBrackets []token.Position
}

// New returns a Parser for the given lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{l: l, maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse the program and return the AST. A "]" at the top level or a "[" that
// is still open at end of input both produce a ParserError that wraps
// ErrUnmatchedClose or ErrUnmatchedOpen respectively.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	p.next()
	nodes, err := p.parseNodes(ctx)
	if err != nil {
		return nil, err
	}
	// parseNodes at depth zero returns on EOF or on a stray "]"
	if p.curToken.Type == token.RBRACKET {
		return nil, NewParserError(ErrorOpts{
			Cause:         ErrUnmatchedClose,
			Message:       "no matching '[' for this ']'",
			File:          p.filename,
			StartPosition: p.curToken.StartPosition,
			EndPosition:   p.curToken.EndPosition,
		})
	}
	return &ast.Program{Nodes: nodes}, nil
}

// parseNodes consumes tokens until EOF or an unconsumed "]" terminates the
// current nesting frame. The caller decides whether that terminator is valid.
func (p *Parser) parseNodes(ctx context.Context) ([]ast.Node, error) {
	var nodes []ast.Node
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch p.curToken.Type {
		case token.EOF, token.RBRACKET:
			return nodes, nil
		case token.GT:
			nodes = append(nodes, &ast.MoveRight{OpPos: p.curToken.StartPosition})
		case token.LT:
			nodes = append(nodes, &ast.MoveLeft{OpPos: p.curToken.StartPosition})
		case token.PLUS:
			nodes = append(nodes, &ast.Increment{OpPos: p.curToken.StartPosition})
		case token.MINUS:
			nodes = append(nodes, &ast.Decrement{OpPos: p.curToken.StartPosition})
		case token.COMMA:
			nodes = append(nodes, &ast.Input{OpPos: p.curToken.StartPosition})
		case token.PERIOD:
			nodes = append(nodes, &ast.Output{OpPos: p.curToken.StartPosition})
		case token.LBRACKET:
			loop, err := p.parseLoop(ctx)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, loop)
		}
		p.next()
	}
}

func (p *Parser) parseLoop(ctx context.Context) (*ast.Loop, error) {
	open := p.curToken
	if len(p.openBrackets) >= p.maxDepth {
		return nil, NewParserError(ErrorOpts{
			Message:       "maximum nesting depth exceeded",
			File:          p.filename,
			StartPosition: open.StartPosition,
			EndPosition:   open.EndPosition,
			Depth:         len(p.openBrackets),
		})
	}
	p.openBrackets = append(p.openBrackets, open.StartPosition)
	p.next()

	body, err := p.parseNodes(ctx)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != token.RBRACKET {
		// End of input with this frame still open
		return nil, NewParserError(ErrorOpts{
			Cause:         ErrUnmatchedOpen,
			Message:       "this '[' is never closed",
			File:          p.filename,
			StartPosition: open.StartPosition,
			EndPosition:   open.EndPosition,
			Depth:         len(p.openBrackets),
		})
	}
	p.openBrackets = p.openBrackets[:len(p.openBrackets)-1]
	return &ast.Loop{
		Lbracket: open.StartPosition,
		Rbracket: p.curToken.StartPosition,
		Nodes:    body,
	}, nil
}

func (p *Parser) next() {
	p.curToken = p.l.Next()
}
