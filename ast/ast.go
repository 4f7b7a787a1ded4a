// Package ast defines the abstract syntax tree representation of a program.
//
// The tree is deliberately simple: seven node kinds, one per operator, with
// Loop being the only node that owns children. There are no back-references,
// so the structure is a true tree rather than a graph.
package ast

import (
	"strings"

	"github.com/deepnoodle-ai/brack/internal/token"
)

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns the canonical source text for the Node. Comments from
	// the original source are not preserved.
	String() string
}

// Program is the root node of the syntax tree.
type Program struct {
	Nodes []Node
}

func (p *Program) Pos() token.Position {
	if len(p.Nodes) > 0 {
		return p.Nodes[0].Pos()
	}
	return token.NoPos
}

func (p *Program) End() token.Position {
	if n := len(p.Nodes); n > 0 {
		return p.Nodes[n-1].End()
	}
	return token.NoPos
}

func (p *Program) String() string {
	var out strings.Builder
	for _, node := range p.Nodes {
		out.WriteString(node.String())
	}
	return out.String()
}

// MoveRight is a node for the ">" operator, which advances the tape cursor.
type MoveRight struct {
	OpPos token.Position
}

func (x *MoveRight) Pos() token.Position { return x.OpPos }
func (x *MoveRight) End() token.Position { return x.OpPos.Advance(1) }
func (x *MoveRight) String() string      { return ">" }

// MoveLeft is a node for the "<" operator, which retreats the tape cursor.
type MoveLeft struct {
	OpPos token.Position
}

func (x *MoveLeft) Pos() token.Position { return x.OpPos }
func (x *MoveLeft) End() token.Position { return x.OpPos.Advance(1) }
func (x *MoveLeft) String() string      { return "<" }

// Increment is a node for the "+" operator, which increments the current cell.
type Increment struct {
	OpPos token.Position
}

func (x *Increment) Pos() token.Position { return x.OpPos }
func (x *Increment) End() token.Position { return x.OpPos.Advance(1) }
func (x *Increment) String() string      { return "+" }

// Decrement is a node for the "-" operator, which decrements the current cell.
type Decrement struct {
	OpPos token.Position
}

func (x *Decrement) Pos() token.Position { return x.OpPos }
func (x *Decrement) End() token.Position { return x.OpPos.Advance(1) }
func (x *Decrement) String() string      { return "-" }

// Input is a node for the "," operator, which reads one input byte into the
// current cell.
type Input struct {
	OpPos token.Position
}

func (x *Input) Pos() token.Position { return x.OpPos }
func (x *Input) End() token.Position { return x.OpPos.Advance(1) }
func (x *Input) String() string      { return "," }

// Output is a node for the "." operator, which writes the current cell to
// the output stream.
type Output struct {
	OpPos token.Position
}

func (x *Output) Pos() token.Position { return x.OpPos }
func (x *Output) End() token.Position { return x.OpPos.Advance(1) }
func (x *Output) String() string      { return "." }

// Loop is a node for a "[" ... "]" pair. It exclusively owns its children.
type Loop struct {
	Lbracket token.Position // position of "["
	Rbracket token.Position // position of "]"
	Nodes    []Node         // loop body, possibly empty
}

func (x *Loop) Pos() token.Position { return x.Lbracket }
func (x *Loop) End() token.Position { return x.Rbracket.Advance(1) }

func (x *Loop) String() string {
	var out strings.Builder
	out.WriteString("[")
	for _, node := range x.Nodes {
		out.WriteString(node.String())
	}
	out.WriteString("]")
	return out.String()
}
