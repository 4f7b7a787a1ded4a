package compiler

import (
	"context"
	"testing"

	"github.com/deepnoodle-ai/brack/op"
	"github.com/deepnoodle-ai/brack/parser"
	"github.com/stretchr/testify/require"
)

func compileSource(t *testing.T, source string, options ...Option) *Code {
	t.Helper()
	program, err := parser.Parse(context.Background(), source)
	require.Nil(t, err)
	code, err := Compile(program, options...)
	require.Nil(t, err)
	return code
}

func opcodes(code *Code) []op.Code {
	result := make([]op.Code, 0, code.InstructionCount())
	for i := 0; i < code.InstructionCount(); i++ {
		result = append(result, code.Instruction(i).Opcode)
	}
	return result
}

func TestCollapseArithmeticRun(t *testing.T) {
	code := compileSource(t, "+++")
	require.Equal(t, 1, code.InstructionCount())
	require.Equal(t, Instruction{Opcode: op.Add, Operand: 3}, code.Instruction(0))
}

func TestCollapseMixedRun(t *testing.T) {
	code := compileSource(t, "++-+--+")
	require.Equal(t, 1, code.InstructionCount())
	require.Equal(t, Instruction{Opcode: op.Add, Operand: 1}, code.Instruction(0))
}

func TestNetZeroRunElided(t *testing.T) {
	code := compileSource(t, "+-")
	require.Equal(t, 0, code.InstructionCount())

	code = compileSource(t, "><")
	require.Equal(t, 0, code.InstructionCount())
}

func TestCollapseMovementRun(t *testing.T) {
	code := compileSource(t, ">>><<")
	require.Equal(t, 1, code.InstructionCount())
	require.Equal(t, Instruction{Opcode: op.Shift, Operand: 1}, code.Instruction(0))
}

func TestRunsDoNotCrossClasses(t *testing.T) {
	code := compileSource(t, "++>>")
	require.Equal(t, []op.Code{op.Add, op.Shift}, opcodes(code))
}

func TestLoopSpecialization(t *testing.T) {
	tests := []struct {
		source  string
		opcode  op.Code
		operand int
	}{
		{"[-]", op.SetZero, 0},
		{"[+]", op.SetMax, 0},
		{"[>]", op.SeekZero, 1},
		{"[<]", op.SeekZero, -1},
		{"[,]", op.DrainInput, 0},
	}
	for _, tt := range tests {
		code := compileSource(t, tt.source)
		require.Equal(t, 1, code.InstructionCount(), tt.source)
		require.Equal(t, tt.opcode, code.Instruction(0).Opcode, tt.source)
		require.Equal(t, tt.operand, code.Instruction(0).Operand, tt.source)
	}
}

func TestMultiNodeLoopNotSpecialized(t *testing.T) {
	code := compileSource(t, "[--]")
	// A two-node body collapses to one Add inside a jump pair
	require.Equal(t, []op.Code{op.JumpIfZero, op.Add, op.JumpIfNonZero}, opcodes(code))
}

func TestSingleOutputLoopNotSpecialized(t *testing.T) {
	code := compileSource(t, "[.]")
	require.Equal(t, []op.Code{op.JumpIfZero, op.Output, op.JumpIfNonZero}, opcodes(code))
}

func TestEmptyLoop(t *testing.T) {
	code := compileSource(t, "[]")
	require.Equal(t, []op.Code{op.JumpIfZero, op.JumpIfNonZero}, opcodes(code))
	require.Equal(t, 1, code.Instruction(0).Operand)
	require.Equal(t, 0, code.Instruction(1).Operand)
}

func TestNestedLoopResolution(t *testing.T) {
	code := compileSource(t, "[[.]]")
	require.Equal(t, []op.Code{
		op.JumpIfZero, op.JumpIfZero, op.Output, op.JumpIfNonZero, op.JumpIfNonZero,
	}, opcodes(code))
	require.Equal(t, 4, code.Instruction(0).Operand)
	require.Equal(t, 3, code.Instruction(1).Operand)
	require.Equal(t, 1, code.Instruction(3).Operand)
	require.Equal(t, 0, code.Instruction(4).Operand)
}

func TestJumpTableInvolution(t *testing.T) {
	sources := []string{
		"[]",
		"[[.]]",
		"+[->+<]>[.-]",
		"[.[.[.]]][.]",
	}
	for _, source := range sources {
		code := compileSource(t, source)
		jumps := code.Jumps()
		require.NotEmpty(t, jumps, source)
		for i, partner := range jumps {
			require.Equal(t, i, jumps[partner], source)
		}
	}
}

func TestJumpPartner(t *testing.T) {
	code := compileSource(t, "[.]")
	partner, ok := code.JumpPartner(0)
	require.True(t, ok)
	require.Equal(t, 2, partner)
	_, ok = code.JumpPartner(1)
	require.False(t, ok)
}

func TestWithoutOptimization(t *testing.T) {
	code := compileSource(t, "+++[-]", WithoutOptimization())
	require.Equal(t, []op.Code{
		op.Add, op.Add, op.Add, op.JumpIfZero, op.Add, op.JumpIfNonZero,
	}, opcodes(code))
	require.Equal(t, 1, code.Instruction(0).Operand)
	require.Equal(t, -1, code.Instruction(4).Operand)
	require.Equal(t, 5, code.Instruction(3).Operand)
	require.Equal(t, 3, code.Instruction(5).Operand)
}

func TestSpecializedLoopsRecursivelyOptimized(t *testing.T) {
	// The inner [-] specializes even when nested in a general loop
	code := compileSource(t, "[>[-]<]")
	require.Equal(t, []op.Code{
		op.JumpIfZero, op.Shift, op.SetZero, op.Shift, op.JumpIfNonZero,
	}, opcodes(code))
}

func TestRenderSpan(t *testing.T) {
	code := compileSource(t, "[->+<]")
	require.Equal(t, []op.Code{
		op.JumpIfZero, op.Add, op.Shift, op.Add, op.Shift, op.JumpIfNonZero,
	}, opcodes(code))
	require.Equal(t, "[ A-1 M1 A1 M-1 ]", code.Render(0, 5))
}

func TestCodeMetadata(t *testing.T) {
	program, err := parser.Parse(context.Background(), "+")
	require.Nil(t, err)
	code, err := Compile(program, WithFilename("t.b"), WithSource("+"))
	require.Nil(t, err)
	require.Equal(t, "t.b", code.Filename())
	require.Equal(t, "+", code.Source())
}
