// Package vm provides a VirtualMachine that executes compiled code.
package vm

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/deepnoodle-ai/brack/compiler"
	"github.com/deepnoodle-ai/brack/op"
)

// DefaultContextCheckInterval is the number of instructions between
// deterministic checks of ctx.Done(). Set to 0 to disable.
const DefaultContextCheckInterval = 10000

// VirtualMachine executes a compiled Code object against a fixed-size
// wrapping memory tape. The compiled Code is immutable and may be executed
// any number of times; all run state (program counter, tape, output) is
// reset at the start of each run. A VirtualMachine is not safe for
// concurrent use.
type VirtualMachine struct {
	pc           int // program counter
	code         *compiler.Code
	instructions []compiler.Instruction
	tape         Tape
	input        io.Reader
	in           *bufio.Reader
	output       []byte
	running      bool

	// contextCheckInterval is the number of instructions between
	// deterministic checks of ctx.Done(). A value of 0 disables checking,
	// in which case a divergent program runs forever.
	contextCheckInterval int

	// observer receives loop-entry callbacks during execution.
	// If nil, no callbacks are made.
	observer Observer
}

// New creates a VirtualMachine for the given compiled code.
func New(code *compiler.Code, options ...Option) *VirtualMachine {
	count := code.InstructionCount()
	instructions := make([]compiler.Instruction, count)
	for i := 0; i < count; i++ {
		instructions[i] = code.Instruction(i)
	}
	vm := &VirtualMachine{
		code:                 code,
		instructions:         instructions,
		contextCheckInterval: DefaultContextCheckInterval,
	}
	for _, opt := range options {
		opt(vm)
	}
	return vm
}

// Run executes the program to completion. Execution terminates when the
// program counter passes the end of the instruction sequence, or when the
// context is cancelled. Given a well-formed compiled program the runtime is
// total: tape indexing is always modular and cell arithmetic always wraps,
// so the only possible error is ctx.Err().
func (vm *VirtualMachine) Run(ctx context.Context) error {
	if vm.running {
		return fmt.Errorf("vm is already running")
	}
	vm.running = true
	defer func() { vm.running = false }()

	vm.reset()

	done := ctx.Done()
	checkInterval := vm.contextCheckInterval
	var count int

	// check is called once per executed instruction, and once per
	// iteration of a closed-form seek, so cancellation stays responsive
	// even inside specialized opcodes.
	check := func() error {
		if checkInterval == 0 || done == nil {
			return nil
		}
		count++
		if count >= checkInterval {
			count = 0
			select {
			case <-done:
				return ctx.Err()
			default:
			}
		}
		return nil
	}

	for vm.pc < len(vm.instructions) {
		if err := check(); err != nil {
			return err
		}
		instr := vm.instructions[vm.pc]
		switch instr.Opcode {
		case op.Shift:
			vm.tape.Move(instr.Operand)
		case op.Add:
			vm.tape.Add(instr.Operand)
		case op.Output:
			vm.output = append(vm.output, vm.tape.Get())
		case op.Input:
			vm.tape.Set(vm.readByte())
		case op.SetZero:
			vm.tape.Set(0)
		case op.SetMax:
			// Equivalent to a [+] loop: any nonzero cell increments until
			// it wraps around to zero, and a zero cell skips the loop.
			// Either way the cell ends at zero.
			vm.tape.Set(0)
		case op.SeekZero:
			for vm.tape.Get() != 0 {
				vm.tape.Move(instr.Operand)
				if err := check(); err != nil {
					return err
				}
			}
		case op.DrainInput:
			// Terminates on a zero input byte. Exhausted input also reads
			// as zero, so end-of-stream and a genuine zero byte are
			// indistinguishable here, matching the unoptimized loop.
			for vm.tape.Get() != 0 {
				vm.tape.Set(vm.readByte())
			}
		case op.JumpIfZero:
			if vm.tape.Get() == 0 {
				vm.pc = instr.Operand
				continue
			}
			if vm.observer != nil {
				vm.observer.OnLoopEnter(LoopEvent{Entry: vm.pc, Exit: instr.Operand})
			}
		case op.JumpIfNonZero:
			if vm.tape.Get() != 0 {
				vm.pc = instr.Operand
				continue
			}
		}
		vm.pc++
	}
	return nil
}

// Output returns a copy of the bytes written by the program so far.
func (vm *VirtualMachine) Output() []byte {
	output := make([]byte, len(vm.output))
	copy(output, vm.output)
	return output
}

// Cursor returns the tape cursor position.
func (vm *VirtualMachine) Cursor() int {
	return vm.tape.Cursor()
}

// Cell returns the value of the tape cell at the given index.
func (vm *VirtualMachine) Cell(index int) uint8 {
	return vm.tape.Cell(index)
}

// TapeSnapshot returns a copy of all tape cell values.
func (vm *VirtualMachine) TapeSnapshot() []uint8 {
	return vm.tape.Snapshot()
}

func (vm *VirtualMachine) reset() {
	vm.pc = 0
	vm.tape.Reset()
	vm.output = nil
	if vm.input != nil && vm.in == nil {
		vm.in = bufio.NewReader(vm.input)
	}
}

// readByte returns the next input byte, or the zero sentinel once the
// input stream is exhausted.
func (vm *VirtualMachine) readByte() uint8 {
	if vm.in == nil {
		return 0
	}
	b, err := vm.in.ReadByte()
	if err != nil {
		vm.in = nil
		return 0
	}
	return b
}
