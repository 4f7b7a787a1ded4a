// Package op defines opcodes used by the compiler and virtual machine.
package op

// Code is an integer opcode that indicates an operation to execute.
type Code uint16

const (
	Invalid Code = 0

	// Tape
	Shift Code = 1
	Add   Code = 2

	// Jump
	JumpIfZero    Code = 10
	JumpIfNonZero Code = 11

	// I/O
	Output Code = 20
	Input  Code = 21

	// Closed-form loop idioms
	SetZero    Code = 30
	SetMax     Code = 31
	SeekZero   Code = 32
	DrainInput Code = 33
)

// Info contains information about an opcode.
type Info struct {
	Code Code

	// Name is the long-form name used by the disassembler.
	Name string

	// Token is the short mnemonic used when rendering an instruction span
	// as canonical text, e.g. in profiler reports.
	Token string

	// HasOperand reports whether instructions with this opcode carry an
	// operand: a signed delta for Shift/Add/SeekZero, an absolute target
	// index for the jumps.
	HasOperand bool
}

var infos = make([]Info, 64)

func init() {
	ops := []Info{
		{Shift, "SHIFT", "M", true},
		{Add, "ADD", "A", true},
		{JumpIfZero, "JUMP_IF_ZERO", "[", true},
		{JumpIfNonZero, "JUMP_IF_NON_ZERO", "]", true},
		{Output, "OUTPUT", "O", false},
		{Input, "INPUT", "I", false},
		{SetZero, "SET_ZERO", "Z", false},
		{SetMax, "SET_MAX", "F", false},
		{SeekZero, "SEEK_ZERO", "S", true},
		{DrainInput, "DRAIN_INPUT", "D", false},
	}
	for _, o := range ops {
		infos[o.Code] = o
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(code Code) Info {
	return infos[code]
}
