package vm

// Observer is an interface for observing VM execution events.
// Implementations can be used for profiling or execution tracing without
// modifying the VM's core.
//
// Observer methods are called synchronously during execution and should be
// fast to avoid impacting performance. Observers have no effect on program
// semantics.
type Observer interface {
	// OnLoopEnter is called each time a JumpIfZero instruction falls
	// through with a nonzero current cell, meaning the loop body is about
	// to execute at least once.
	OnLoopEnter(event LoopEvent)
}

// LoopEvent describes one entry into a loop body.
type LoopEvent struct {
	// Entry is the instruction index of the loop's JumpIfZero.
	Entry int

	// Exit is the instruction index of the matching JumpIfNonZero.
	Exit int
}

// NoOpObserver is an Observer implementation that does nothing. Embed this
// in your observer to provide default implementations for methods you do
// not need.
type NoOpObserver struct{}

func (NoOpObserver) OnLoopEnter(LoopEvent) {}

// Ensure NoOpObserver implements Observer.
var _ Observer = NoOpObserver{}
