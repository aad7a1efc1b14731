// Package picker implements the meal pool state machine: build a pool of
// meals, draw one uniformly at random, and reset.
package picker

// Phase is the coarse state of a picker, derived from its State.
type Phase int

const (
	// Empty means the pool is empty. Nothing is selected unless the policy
	// keeps the last selection across a reset.
	Empty Phase = iota
	// Populated means the pool has meals but nothing was drawn yet.
	Populated
	// Selected means a meal has been drawn from the pool.
	Selected
)

func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	case Selected:
		return "selected"
	default:
		return "unknown"
	}
}

// State is everything a renderer needs to draw the picker.
type State struct {
	// Entry is the in-progress custom meal text.
	Entry string `json:"entry"`
	// Pool is the ordered list of candidate meals. Duplicates are allowed.
	Pool []string `json:"pool"`
	// Selection is the last drawn meal, "" when absent.
	Selection string `json:"selection,omitempty"`
	// Celebrating is set after a successful draw and cleared by reset.
	Celebrating bool `json:"celebrating"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Pool = append(make([]string, 0, len(s.Pool)), s.Pool...)
	return s
}

// HasSelection reports whether a meal has been drawn.
func (s State) HasSelection() bool {
	return s.Selection != ""
}

// Phase classifies the state by its pool and celebration flag. A reset
// always lands in Empty, even when ResetClearsAll is off and Selection
// still holds the previous draw.
func (s State) Phase() Phase {
	switch {
	case len(s.Pool) == 0:
		return Empty
	case s.Celebrating:
		return Selected
	default:
		return Populated
	}
}
