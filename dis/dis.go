// Package dis supports disassembling compiled code into a readable listing.
package dis

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/deepnoodle-ai/brack/compiler"
	"github.com/deepnoodle-ai/brack/op"
)

// Row describes one instruction in a disassembly listing.
type Row struct {
	// Index of the instruction in the flat sequence.
	Index int

	// Name is the long-form opcode name, e.g. "JUMP_IF_ZERO".
	Name string

	// Operand is the rendered operand, or "" for opcodes without one.
	Operand string

	// Partner is the matching jump index rendered as "-> N", or "" for
	// non-jump instructions.
	Partner string
}

// Disassemble returns one Row per instruction in the compiled code.
func Disassemble(code *compiler.Code) []Row {
	rows := make([]Row, 0, code.InstructionCount())
	for i := 0; i < code.InstructionCount(); i++ {
		instr := code.Instruction(i)
		info := op.GetInfo(instr.Opcode)
		row := Row{Index: i, Name: info.Name}
		if info.HasOperand {
			row.Operand = fmt.Sprintf("%d", instr.Operand)
		}
		if partner, ok := code.JumpPartner(i); ok {
			row.Partner = fmt.Sprintf("-> %d", partner)
		}
		rows = append(rows, row)
	}
	return rows
}

// Print writes the rows as an aligned listing.
func Print(rows []Row, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", row.Index, row.Name, row.Operand, row.Partner)
	}
	return tw.Flush()
}
