package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/deepnoodle-ai/brack/ast"
	"github.com/stretchr/testify/require"
)

func TestParseSimple(t *testing.T) {
	ctx := context.Background()
	program, err := Parse(ctx, "+-><.,")
	require.Nil(t, err)
	require.Len(t, program.Nodes, 6)
	require.IsType(t, &ast.Increment{}, program.Nodes[0])
	require.IsType(t, &ast.Decrement{}, program.Nodes[1])
	require.IsType(t, &ast.MoveRight{}, program.Nodes[2])
	require.IsType(t, &ast.MoveLeft{}, program.Nodes[3])
	require.IsType(t, &ast.Output{}, program.Nodes[4])
	require.IsType(t, &ast.Input{}, program.Nodes[5])
}

func TestParseComments(t *testing.T) {
	ctx := context.Background()
	program, err := Parse(ctx, "add one + and print .")
	require.Nil(t, err)
	require.Len(t, program.Nodes, 2)
}

func TestParseNestedLoops(t *testing.T) {
	ctx := context.Background()
	program, err := Parse(ctx, "+[>[-]<]")
	require.Nil(t, err)
	require.Len(t, program.Nodes, 2)

	outer, ok := program.Nodes[1].(*ast.Loop)
	require.True(t, ok)
	require.Len(t, outer.Nodes, 3)

	inner, ok := outer.Nodes[1].(*ast.Loop)
	require.True(t, ok)
	require.Len(t, inner.Nodes, 1)
	require.IsType(t, &ast.Decrement{}, inner.Nodes[0])
}

func TestParseEmptyLoop(t *testing.T) {
	ctx := context.Background()
	program, err := Parse(ctx, "[]")
	require.Nil(t, err)
	require.Len(t, program.Nodes, 1)
	loop, ok := program.Nodes[0].(*ast.Loop)
	require.True(t, ok)
	require.Len(t, loop.Nodes, 0)
}

func TestUnmatchedOpen(t *testing.T) {
	ctx := context.Background()
	_, err := Parse(ctx, "++[[->", WithFilename("t.b"))
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrUnmatchedOpen))

	var parserErr ParserError
	require.True(t, errors.As(err, &parserErr))
	// The innermost unclosed bracket is reported
	require.Equal(t, 3, parserErr.StartPosition().Char)
	require.Equal(t, 2, parserErr.Depth())
	require.Equal(t, "t.b", parserErr.File())
}

func TestUnmatchedClose(t *testing.T) {
	ctx := context.Background()
	_, err := Parse(ctx, "+]+")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrUnmatchedClose))

	var parserErr ParserError
	require.True(t, errors.As(err, &parserErr))
	require.Equal(t, 1, parserErr.StartPosition().Char)
}

func TestUnmatchedCloseAfterBalancedLoop(t *testing.T) {
	ctx := context.Background()
	_, err := Parse(ctx, "[-]]")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrUnmatchedClose))
}

func TestMaxDepth(t *testing.T) {
	ctx := context.Background()
	_, err := Parse(ctx, "[[[[", WithMaxDepth(2))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "maximum nesting depth exceeded")
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, "+++")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, context.Canceled))
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	tests := []string{
		"",
		"+",
		"[-]",
		"+[>[-]<]",
		",[.,]",
		"++[->+<]>.",
	}
	for _, src := range tests {
		program, err := Parse(ctx, src)
		require.Nil(t, err, src)
		require.Equal(t, src, program.String(), src)
	}
}
