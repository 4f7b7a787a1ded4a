// Package brack is a compiler and virtual machine for a minimal tape-based
// instruction language with eight single-character operators, together with
// a hot-loop execution profiler.
//
// Compilation is a linear pipeline: source text is lexed into operator
// tokens, parsed into a loop-structured tree, lowered by a peephole
// optimizer into a flat instruction sequence, and finished by a jump
// resolver that pairs every loop entry with its exit. The resulting Code is
// immutable and may be executed any number of times.
//
//	output, err := brack.Eval(ctx, "++[->+<]>.")
package brack

import (
	"context"
	"io"

	"github.com/deepnoodle-ai/brack/compiler"
	"github.com/deepnoodle-ai/brack/parser"
	"github.com/deepnoodle-ai/brack/profiler"
	"github.com/deepnoodle-ai/brack/vm"
)

// Option configures a compilation or execution.
type Option func(*options)

type options struct {
	filename  string
	input     io.Reader
	observer  vm.Observer
	optimize  bool
	threshold int
}

func collectOptions(opts ...Option) *options {
	o := &options{optimize: true, threshold: profiler.DefaultThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) compilerOpts(source string) []compiler.Option {
	opts := []compiler.Option{compiler.WithSource(source)}
	if o.filename != "" {
		opts = append(opts, compiler.WithFilename(o.filename))
	}
	if !o.optimize {
		opts = append(opts, compiler.WithoutOptimization())
	}
	return opts
}

func (o *options) vmOpts() []vm.Option {
	var opts []vm.Option
	if o.input != nil {
		opts = append(opts, vm.WithInput(o.input))
	}
	if o.observer != nil {
		opts = append(opts, vm.WithObserver(o.observer))
	}
	return opts
}

// WithFilename sets the filename for the source code being evaluated.
// This is used in error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithInput sets the input byte stream for execution. The default input is
// empty, so Input instructions read the zero sentinel.
func WithInput(input io.Reader) Option {
	return func(o *options) {
		o.input = input
	}
}

// WithObserver sets an observer for VM execution events, enabling hot-loop
// profilers and execution tracers.
func WithObserver(observer vm.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithoutOptimization compiles the baseline jump-pair-only lowering,
// skipping run collapsing and loop specialization. Execution behavior is
// contractually identical; only the instruction sequence differs.
func WithoutOptimization() Option {
	return func(o *options) {
		o.optimize = false
	}
}

// WithProfilerThreshold sets the minimum entry count a loop must exceed to
// appear in a Profile report. Only Profile uses this option.
func WithProfilerThreshold(threshold int) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// Compile parses and compiles source code into an executable Code object.
// The returned Code is immutable and safe to share across sequential runs.
func Compile(ctx context.Context, source string, opts ...Option) (*compiler.Code, error) {
	o := collectOptions(opts...)

	var parserOpts []parser.Option
	if o.filename != "" {
		parserOpts = append(parserOpts, parser.WithFilename(o.filename))
	}
	program, err := parser.Parse(ctx, source, parserOpts...)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(program, o.compilerOpts(source)...)
}

// Run executes compiled code and returns the bytes it wrote to the output
// stream. Each call creates fresh runtime state.
func Run(ctx context.Context, code *compiler.Code, opts ...Option) ([]byte, error) {
	o := collectOptions(opts...)
	machine := vm.New(code, o.vmOpts()...)
	if err := machine.Run(ctx); err != nil {
		return nil, err
	}
	return machine.Output(), nil
}

// Eval compiles and runs source code, returning the program's output.
func Eval(ctx context.Context, source string, opts ...Option) ([]byte, error) {
	code, err := Compile(ctx, source, opts...)
	if err != nil {
		return nil, err
	}
	return Run(ctx, code, opts...)
}

// Profile compiles and runs source code with a hot-loop profiler attached,
// returning the program's output alongside the profiler's report.
func Profile(ctx context.Context, source string, opts ...Option) ([]byte, profiler.Report, error) {
	o := collectOptions(opts...)
	code, err := Compile(ctx, source, opts...)
	if err != nil {
		return nil, nil, err
	}
	p := profiler.New(profiler.WithThreshold(o.threshold))
	opts = append(opts, WithObserver(p))
	output, err := Run(ctx, code, opts...)
	if err != nil {
		return nil, nil, err
	}
	return output, p.Report(code), nil
}
