// Package compiler lowers an abstract syntax tree (AST) into the flat
// instruction sequence executed by the virtual machine.
//
// # Lowering
//
// The compiler performs a depth-first peephole rewrite of the tree:
//
//   - Maximal runs of consecutive "+" and "-" collapse into a single Add
//     whose operand is the signed net of the run. A net of zero emits
//     nothing.
//   - Maximal runs of consecutive ">" and "<" collapse into a single Shift
//     under the same signed-net rule.
//   - A loop whose body is a single node is rewritten into a closed-form
//     opcode: [-] becomes SetZero, [+] becomes SetMax, [>] and [<] become
//     SeekZero, and [,] becomes DrainInput.
//   - Every other loop is recursively lowered and wrapped in a
//     JumpIfZero/JumpIfNonZero pair with Placeholder targets.
//
// # Jump resolution
//
// After lowering, a single linear scan pairs each JumpIfZero with its
// JumpIfNonZero partner, patches both operands in place, and records both
// directions in the symmetric jump table. See ResolveJumps.
//
// The optimized lowering is contractually equivalent to the jump-pair-only
// lowering produced with WithoutOptimization: identical output bytes and an
// identical final tape for every program and every input.
package compiler

import (
	"github.com/deepnoodle-ai/brack/ast"
	"github.com/deepnoodle-ai/brack/op"
)

// Placeholder is a temporary jump target written during lowering, which is
// always replaced during jump resolution.
const Placeholder = 0

// Option is a configuration function for a Compiler.
type Option func(*Compiler)

// WithFilename sets the source filename recorded on the compiled Code.
func WithFilename(filename string) Option {
	return func(c *Compiler) {
		c.filename = filename
	}
}

// WithSource sets the original source text recorded on the compiled Code.
func WithSource(source string) Option {
	return func(c *Compiler) {
		c.source = source
	}
}

// WithoutOptimization disables run collapsing and loop specialization,
// producing the baseline jump-pair-only lowering. Useful for comparing
// optimized and unoptimized execution.
func WithoutOptimization() Option {
	return func(c *Compiler) {
		c.optimize = false
	}
}

// Compiler lowers an AST into a flat instruction sequence.
type Compiler struct {
	instructions []Instruction
	optimize     bool
	source       string
	filename     string
}

// New creates a Compiler with the given options.
func New(options ...Option) *Compiler {
	c := &Compiler{optimize: true}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Compile lowers the given program and resolves its jumps, returning an
// immutable Code object.
func Compile(program *ast.Program, options ...Option) (*Code, error) {
	return New(options...).Compile(program)
}

// Compile lowers the given program. The Compiler should be used only once.
func (c *Compiler) Compile(program *ast.Program) (*Code, error) {
	c.compileNodes(program.Nodes)
	jumps, err := ResolveJumps(c.instructions)
	if err != nil {
		return nil, err
	}
	return &Code{
		instructions: c.instructions,
		jumps:        jumps,
		source:       c.source,
		filename:     c.filename,
	}, nil
}

func (c *Compiler) compileNodes(nodes []ast.Node) {
	for i := 0; i < len(nodes); {
		switch node := nodes[i].(type) {
		case *ast.Increment, *ast.Decrement:
			i = c.compileRun(nodes, i, op.Add)
		case *ast.MoveRight, *ast.MoveLeft:
			i = c.compileRun(nodes, i, op.Shift)
		case *ast.Output:
			c.emit(op.Output, 0)
			i++
		case *ast.Input:
			c.emit(op.Input, 0)
			i++
		case *ast.Loop:
			c.compileLoop(node)
			i++
		default:
			// Unreachable: the parser produces no other node kinds
			i++
		}
	}
}

// compileRun collapses the maximal run of arithmetic or movement nodes
// starting at index start into a single instruction carrying the signed net.
// Returns the index of the first node past the run. Without optimization,
// each node emits its own unit instruction.
func (c *Compiler) compileRun(nodes []ast.Node, start int, opcode op.Code) int {
	if !c.optimize {
		c.emit(opcode, runDelta(nodes[start]))
		return start + 1
	}
	net := 0
	i := start
	for ; i < len(nodes); i++ {
		d := runDelta(nodes[i])
		if d == 0 || !sameRun(nodes[start], nodes[i]) {
			break
		}
		net += d
	}
	if net != 0 {
		c.emit(opcode, net)
	}
	return i
}

// runDelta returns the signed unit contribution of an arithmetic or
// movement node, or 0 for any other node kind.
func runDelta(node ast.Node) int {
	switch node.(type) {
	case *ast.Increment, *ast.MoveRight:
		return 1
	case *ast.Decrement, *ast.MoveLeft:
		return -1
	default:
		return 0
	}
}

// sameRun reports whether two nodes belong to the same run: both
// arithmetic, or both movement.
func sameRun(a, b ast.Node) bool {
	return runClass(a) == runClass(b) && runClass(a) != 0
}

func runClass(node ast.Node) int {
	switch node.(type) {
	case *ast.Increment, *ast.Decrement:
		return 1
	case *ast.MoveRight, *ast.MoveLeft:
		return 2
	default:
		return 0
	}
}

func (c *Compiler) compileLoop(loop *ast.Loop) {
	if c.optimize && len(loop.Nodes) == 1 {
		switch loop.Nodes[0].(type) {
		case *ast.Decrement:
			c.emit(op.SetZero, 0)
			return
		case *ast.Increment:
			// Under 8-bit wraparound a [+] loop increments any nonzero
			// cell until it wraps to zero, and skips entirely on zero.
			// The net effect is identical to SetZero; the opcode keeps
			// its historical name.
			c.emit(op.SetMax, 0)
			return
		case *ast.MoveRight:
			c.emit(op.SeekZero, 1)
			return
		case *ast.MoveLeft:
			c.emit(op.SeekZero, -1)
			return
		case *ast.Input:
			c.emit(op.DrainInput, 0)
			return
		}
	}
	c.emit(op.JumpIfZero, Placeholder)
	c.compileNodes(loop.Nodes)
	c.emit(op.JumpIfNonZero, Placeholder)
}

// emit appends an instruction and returns its index.
func (c *Compiler) emit(opcode op.Code, operand int) int {
	c.instructions = append(c.instructions, Instruction{Opcode: opcode, Operand: operand})
	return len(c.instructions) - 1
}
