package compiler

import (
	"errors"
	"fmt"

	"github.com/deepnoodle-ai/brack/op"
)

// ErrUnbalanced indicates that the flat instruction sequence does not
// contain perfectly paired jump instructions. A well-formed AST cannot
// produce this, but the resolver verifies rather than assumes it.
var ErrUnbalanced = errors.New("unbalanced jump instructions")

// StructuralError is returned when jump resolution fails. It reports the
// instruction index where the imbalance was detected.
type StructuralError struct {
	message string
	index   int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s (instruction %d)", e.message, e.index)
}

func (e *StructuralError) Unwrap() error { return ErrUnbalanced }

// Index returns the instruction index where the imbalance was detected.
func (e *StructuralError) Index() int { return e.index }

// ResolveJumps performs a single linear scan over the instruction sequence,
// pairing each JumpIfZero with its matching JumpIfNonZero. Both operands
// are patched in place with the partner's index, and both directions are
// recorded in the returned jump table, which is a perfect involution:
// table[table[i]] == i for every bracket index i.
func ResolveJumps(instructions []Instruction) (map[int]int, error) {
	jumps := map[int]int{}
	var stack []int
	for i := range instructions {
		switch instructions[i].Opcode {
		case op.JumpIfZero:
			stack = append(stack, i)
		case op.JumpIfNonZero:
			if len(stack) == 0 {
				return nil, &StructuralError{
					message: "jump with no open partner",
					index:   i,
				}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			instructions[open].Operand = i
			instructions[i].Operand = open
			jumps[open] = i
			jumps[i] = open
		}
	}
	if len(stack) > 0 {
		return nil, &StructuralError{
			message: "jump never closed",
			index:   stack[len(stack)-1],
		}
	}
	return jumps, nil
}
