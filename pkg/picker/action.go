package picker

import (
	"github.com/samber/lo"

	"github.com/branyzp/whatsforlunch/pkg/catalog"
)

// Action is a user intent applied to a State.
type Action interface {
	// Name identifies the action in logs and event streams.
	Name() string
}

// SetEntry replaces the custom meal text, one keystroke at a time.
type SetEntry struct {
	Text string
}

// AddCategory appends every meal of a category to the pool.
type AddCategory struct {
	Category catalog.Category
}

// SubmitEntry commits the custom meal text to the pool.
type SubmitEntry struct{}

// Randomize draws one meal from the pool.
type Randomize struct{}

// Reset empties the pool.
type Reset struct{}

func (SetEntry) Name() string    { return "set_entry" }
func (AddCategory) Name() string { return "add_category" }
func (SubmitEntry) Name() string { return "submit_entry" }
func (Randomize) Name() string   { return "randomize" }
func (Reset) Name() string       { return "reset" }

// Policy selects between the behaviours the picker can be configured with.
type Policy struct {
	// GuardCategories skips AddCategory when the category's first meal is
	// already in the pool.
	GuardCategories bool
	// ResetClearsAll makes Reset clear Selection and Entry as well as the
	// pool and the celebration flag.
	ResetClearsAll bool
}

// DefaultPolicy guards repeated categories and fully clears on reset.
func DefaultPolicy() Policy {
	return Policy{
		GuardCategories: true,
		ResetClearsAll:  true,
	}
}

// Reduce applies a to s and returns the next state. s is not modified.
// Randomize draws from src; every other action is deterministic.
func Reduce(s State, a Action, p Policy, src Source) State {
	next, _ := apply(s, a, p, src)
	return next
}

// apply returns the next state and whether the action's precondition held.
func apply(s State, a Action, p Policy, src Source) (State, bool) {
	next := s.Clone()
	switch a := a.(type) {
	case SetEntry:
		next.Entry = a.Text
		return next, true

	case AddCategory:
		if len(a.Category.Meals) == 0 {
			return next, false
		}
		if p.GuardCategories && lo.Contains(next.Pool, a.Category.First()) {
			return next, false
		}
		next.Pool = append(next.Pool, a.Category.Meals...)
		return next, true

	case SubmitEntry:
		next.Pool = append(next.Pool, next.Entry)
		next.Entry = ""
		return next, true

	case Randomize:
		if len(next.Pool) == 0 {
			return next, false
		}
		if src == nil {
			src = defaultSource{}
		}
		next.Selection = next.Pool[src.IntN(len(next.Pool))]
		next.Celebrating = true
		return next, true

	case Reset:
		next.Pool = []string{}
		next.Celebrating = false
		if p.ResetClearsAll {
			next.Selection = ""
			next.Entry = ""
		}
		return next, true
	}
	return next, false
}
