package vm

import "io"

// Option is a configuration function for a VirtualMachine.
type Option func(*VirtualMachine)

// WithInput sets the input byte stream consumed by Input and DrainInput
// instructions. Once the stream is exhausted, reads produce the zero
// sentinel. The default input is empty.
func WithInput(input io.Reader) Option {
	return func(vm *VirtualMachine) {
		vm.input = input
	}
}

// WithObserver sets an observer for VM execution events. The observer
// receives a callback each time a loop body is entered, which enables
// hot-loop profilers and execution tracers.
func WithObserver(observer Observer) Option {
	return func(vm *VirtualMachine) {
		vm.observer = observer
	}
}

// WithContextCheckInterval sets how often the VM checks ctx.Done() during
// execution, in number of instructions. A value of 0 disables the check,
// in which case a divergent program runs forever. The default is
// DefaultContextCheckInterval.
func WithContextCheckInterval(interval int) Option {
	return func(vm *VirtualMachine) {
		vm.contextCheckInterval = interval
	}
}
