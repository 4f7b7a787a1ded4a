package compiler

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/brack/op"
)

// Instruction is one unit of the compiled, flat instruction sequence.
// The operand is a signed delta for Shift, Add, and SeekZero, and an
// absolute instruction index for the two jumps. Opcodes without operands
// carry a zero operand.
type Instruction struct {
	Opcode  op.Code
	Operand int
}

// String returns the long-form rendering used by the disassembler,
// e.g. "SHIFT 2" or "OUTPUT".
func (i Instruction) String() string {
	info := op.GetInfo(i.Opcode)
	if info.HasOperand {
		return fmt.Sprintf("%s %d", info.Name, i.Operand)
	}
	return info.Name
}

// Token returns the canonical short mnemonic for this instruction, stable
// across runs, e.g. "M2", "A-1", "[", "O". Jump targets are deliberately
// excluded so that textually identical loops at different offsets render
// identically.
func (i Instruction) Token() string {
	info := op.GetInfo(i.Opcode)
	switch i.Opcode {
	case op.Shift, op.Add, op.SeekZero:
		return fmt.Sprintf("%s%d", info.Token, i.Operand)
	default:
		return info.Token
	}
}

// Code is a compiled program: an immutable flat instruction sequence plus
// the symmetric jump table pairing every JumpIfZero with its JumpIfNonZero
// partner. A Code may be executed any number of times and is safe to share
// read-only across sequential runs.
type Code struct {
	instructions []Instruction
	jumps        map[int]int
	source       string
	filename     string
}

// InstructionCount returns the number of instructions in the program.
func (c *Code) InstructionCount() int {
	return len(c.instructions)
}

// Instruction returns the instruction at the given index.
func (c *Code) Instruction(index int) Instruction {
	return c.instructions[index]
}

// Jumps returns a copy of the symmetric jump table. For every bracket
// index i, jumps[jumps[i]] == i.
func (c *Code) Jumps() map[int]int {
	jumps := make(map[int]int, len(c.jumps))
	for k, v := range c.jumps {
		jumps[k] = v
	}
	return jumps
}

// JumpPartner returns the partner index for the jump instruction at the
// given index, along with whether the index is a jump instruction at all.
func (c *Code) JumpPartner(index int) (int, bool) {
	partner, ok := c.jumps[index]
	return partner, ok
}

// Render returns the canonical token text for the instruction span
// [start, end], one token per instruction, space separated.
func (c *Code) Render(start, end int) string {
	var out strings.Builder
	for i := start; i <= end && i < len(c.instructions); i++ {
		if i > start {
			out.WriteString(" ")
		}
		out.WriteString(c.instructions[i].Token())
	}
	return out.String()
}

// Source returns the original source code.
func (c *Code) Source() string {
	return c.source
}

// Filename returns the source filename, if one was set.
func (c *Code) Filename() string {
	return c.filename
}
