package ast

import (
	"testing"

	"github.com/deepnoodle-ai/brack/internal/token"
	"github.com/stretchr/testify/require"
)

func TestProgramString(t *testing.T) {
	p := &Program{Nodes: []Node{
		&Increment{},
		&Loop{Nodes: []Node{&Decrement{}}},
		&MoveRight{},
		&Output{},
	}}
	require.Equal(t, "+[-]>.", p.String())
}

func TestLoopPositions(t *testing.T) {
	loop := &Loop{
		Lbracket: token.Position{Char: 3, Column: 3},
		Rbracket: token.Position{Char: 5, Column: 5},
		Nodes:    []Node{&Decrement{OpPos: token.Position{Char: 4, Column: 4}}},
	}
	require.Equal(t, 3, loop.Pos().Char)
	require.Equal(t, 6, loop.End().Char)
}

func TestEmptyProgramPositions(t *testing.T) {
	p := &Program{}
	require.Equal(t, token.NoPos, p.Pos())
	require.Equal(t, token.NoPos, p.End())
	require.Equal(t, "", p.String())
}

type countingVisitor struct {
	loops int
	total int
}

func (c *countingVisitor) Visit(node Node) Visitor {
	c.total++
	if _, ok := node.(*Loop); ok {
		c.loops++
	}
	return c
}

func TestWalk(t *testing.T) {
	p := &Program{Nodes: []Node{
		&Increment{},
		&Loop{Nodes: []Node{
			&Decrement{},
			&Loop{Nodes: []Node{&MoveRight{}}},
		}},
	}}
	v := &countingVisitor{}
	Walk(v, p)
	require.Equal(t, 2, v.loops)
	// program + increment + loop + decrement + loop + moveright
	require.Equal(t, 6, v.total)
}

func TestFormat(t *testing.T) {
	p := &Program{Nodes: []Node{
		&Increment{},
		&Increment{},
		&Loop{Nodes: []Node{
			&Decrement{},
			&MoveRight{},
		}},
		&Output{},
	}}
	require.Equal(t, "++\n[\n\t->\n]\n.\n", Format(p))
}
