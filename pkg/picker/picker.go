package picker

import (
	"github.com/branyzp/whatsforlunch/pkg/catalog"
)

// Outcome describes one dispatched action.
type Outcome struct {
	Action Action
	Before State
	After  State
	// Applied is false when the action's precondition did not hold and the
	// state was left as it was (a guarded category, a draw from an empty pool).
	Applied bool
}

// Observer is notified after every dispatched action.
type Observer func(Outcome)

// Option configures a Picker.
type Option func(*Picker)

// WithPolicy overrides DefaultPolicy.
func WithPolicy(p Policy) Option {
	return func(pk *Picker) { pk.policy = p }
}

// WithSource overrides the random source used by Randomize.
func WithSource(src Source) Option {
	return func(pk *Picker) {
		if src != nil {
			pk.source = src
		}
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(pk *Picker) {
		if o != nil {
			pk.observers = append(pk.observers, o)
		}
	}
}

// Picker owns one meal picking session. It is not safe for concurrent use;
// callers feed it from a single event loop.
type Picker struct {
	state     State
	policy    Policy
	source    Source
	observers []Observer
}

// New returns a picker in the Empty phase.
func New(opts ...Option) *Picker {
	p := &Picker{
		state:  State{Pool: []string{}},
		policy: DefaultPolicy(),
		source: defaultSource{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Policy returns the active policy.
func (p *Picker) Policy() Policy {
	return p.policy
}

// Snapshot returns a copy of the current state.
func (p *Picker) Snapshot() State {
	return p.state.Clone()
}

// Dispatch applies a and notifies observers.
func (p *Picker) Dispatch(a Action) Outcome {
	before := p.state
	next, applied := apply(before, a, p.policy, p.source)
	p.state = next

	out := Outcome{Action: a, Before: before.Clone(), After: next.Clone(), Applied: applied}
	for _, o := range p.observers {
		o(out)
	}
	return out
}

// SetEntry records the current custom meal text.
func (p *Picker) SetEntry(text string) {
	p.Dispatch(SetEntry{Text: text})
}

// AddCategory appends the category's meals and reports whether it did.
func (p *Picker) AddCategory(c catalog.Category) bool {
	return p.Dispatch(AddCategory{Category: c}).Applied
}

// AddCustomMeal commits the entry text to the pool and returns it.
func (p *Picker) AddCustomMeal() string {
	return p.Dispatch(SubmitEntry{}).Before.Entry
}

// Randomize draws a meal. ok is false when the pool is empty, in which case
// nothing changes.
func (p *Picker) Randomize() (meal string, ok bool) {
	out := p.Dispatch(Randomize{})
	if !out.Applied {
		return "", false
	}
	return out.After.Selection, true
}

// Reset empties the pool and stops the celebration.
func (p *Picker) Reset() {
	p.Dispatch(Reset{})
}
