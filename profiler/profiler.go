// Package profiler implements a hot-loop execution profiler for the virtual
// machine. It observes loop-entry events during a run, tallies per-loop
// iteration counts, and renders a frequency report of the loops whose entry
// count exceeds a threshold.
package profiler

import (
	"sort"

	"github.com/deepnoodle-ai/brack/compiler"
	"github.com/deepnoodle-ai/brack/vm"
)

// DefaultThreshold is the entry count a loop must exceed to appear in a
// report.
const DefaultThreshold = 100

// Option is a configuration function for a Profiler.
type Option func(*Profiler)

// WithThreshold overrides the default hot-loop threshold.
func WithThreshold(threshold int) Option {
	return func(p *Profiler) {
		p.threshold = threshold
	}
}

// Profiler counts loop entries keyed by the (entry, exit) instruction index
// pair. Attach it to a VirtualMachine with vm.WithObserver. Profiling is
// purely diagnostic and has no effect on execution.
type Profiler struct {
	threshold int
	counts    map[vm.LoopEvent]int
}

// New creates a Profiler with the given options.
func New(options ...Option) *Profiler {
	p := &Profiler{
		threshold: DefaultThreshold,
		counts:    map[vm.LoopEvent]int{},
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// OnLoopEnter implements vm.Observer. It is called each time a loop body is
// entered with a nonzero current cell.
func (p *Profiler) OnLoopEnter(event vm.LoopEvent) {
	p.counts[event]++
}

var _ vm.Observer = (*Profiler)(nil)

// Reset discards all accumulated counts so the Profiler can observe a new
// run.
func (p *Profiler) Reset() {
	p.counts = map[vm.LoopEvent]int{}
}

// Count returns the accumulated entry count for the given loop.
func (p *Profiler) Count(event vm.LoopEvent) int {
	return p.counts[event]
}

// Report renders the hot loops observed during the run against the compiled
// code that was executed. Loops whose entry count exceeds the threshold are
// rendered as canonical token text (one token per instruction, stable
// across runs), and loops that render identically are merged by summing
// their counts.
//
// Report is only meaningful once the run has fully terminated; calling it
// mid-run yields partial counts.
func (p *Profiler) Report(code *compiler.Code) Report {
	report := Report{}
	for event, count := range p.counts {
		if count <= p.threshold {
			continue
		}
		text := code.Render(event.Entry, event.Exit)
		report[text] += count
	}
	return report
}

// Report maps the canonical text of each hot loop to its aggregate entry
// count.
type Report map[string]int

// Entry is one row of a sorted report.
type Entry struct {
	Text  string `json:"loop"`
	Count int    `json:"count"`
}

// Sorted returns the report rows ordered by descending count, with ties
// broken by text so the ordering is deterministic.
func (r Report) Sorted() []Entry {
	entries := make([]Entry, 0, len(r))
	for text, count := range r {
		entries = append(entries, Entry{Text: text, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Text < entries[j].Text
	})
	return entries
}
